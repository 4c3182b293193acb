package main

import (
	"context"
	"fmt"
	"os"

	"invtrack/internal/cli"
	"invtrack/pkg/logger"
)

func main() {
	defer logger.Sync()
	root := cli.NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "invtrack:", err)
		os.Exit(1)
	}
}
