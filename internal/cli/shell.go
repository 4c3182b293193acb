package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"invtrack/pkg/inventory"
	"invtrack/pkg/inventory/audit"
	"invtrack/pkg/inventory/file"
	"invtrack/pkg/inventory/memory"
	"invtrack/pkg/logger"
)

// newShellCommand runs an interactive session over a fixed command set. The
// session is saved when it ends unless --transient is given.
func newShellCommand(opts *options) *cobra.Command {
	var transient bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over a fixed command set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store inventory.Store = file.New(opts.file)
			if transient {
				store = memory.New()
			}
			return runShell(cmd.Context(), store, cmd.InOrStdin(), cmd.OutOrStdout(), opts.lowThreshold)
		},
	}
	cmd.Flags().BoolVar(&transient, "transient", false, "do not persist the session")
	return cmd
}

// runShell executes the interactive loop. Every line is matched against the
// fixed grammar below; input is never evaluated as code.
func runShell(ctx context.Context, store inventory.Store, in io.Reader, out io.Writer, lowThreshold int) error {
	inv, err := store.Load(ctx)
	if err != nil {
		return err
	}
	journal := audit.NewJournal()

	fmt.Fprintln(out, "commands: add NAME QTY | remove NAME QTY | get NAME | low | report | quit")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		verb, args := fields[0], fields[1:]
		if verb == "quit" || verb == "exit" {
			break
		}
		if err := runShellCommand(inv, journal, verb, args, out, lowThreshold); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if err := store.Save(ctx, inv); err != nil {
		return err
	}
	logger.Log.Info("session saved", zap.Int("operations", journal.Len()))
	return nil
}

func runShellCommand(inv *inventory.Inventory, journal *audit.Journal, verb string, args []string, out io.Writer, lowThreshold int) error {
	switch verb {
	case "add", "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s NAME QTY", verb)
		}
		qty, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		var total int
		if verb == "add" {
			total, err = inv.Add(args[0], qty, journal)
		} else {
			total, err = inv.Remove(args[0], qty, journal)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d\n", args[0], total)
		return nil
	case "get":
		if len(args) != 1 {
			return errors.New("usage: get NAME")
		}
		fmt.Fprintf(out, "%d\n", inv.Quantity(args[0]))
		return nil
	case "low":
		if len(args) != 0 {
			return errors.New("usage: low")
		}
		writeLow(out, inv, lowThreshold)
		return nil
	case "report":
		if len(args) != 0 {
			return errors.New("usage: report")
		}
		writeReport(out, inv)
		return nil
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
}
