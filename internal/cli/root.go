// Package cli implements the invtrack command tree.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"invtrack/pkg/logger"
)

const (
	defaultFile         = "inventory.json"
	defaultLowThreshold = 5
)

// options carries the settings shared by every subcommand. Values come from
// flags first, then the optional config file; the environment is never
// consulted.
type options struct {
	cfgPath      string
	file         string
	lowThreshold int
	verbose      bool
	logJSON      bool
}

// NewRootCommand builds the invtrack command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{lowThreshold: defaultLowThreshold}
	root := &cobra.Command{
		Use:           "invtrack",
		Short:         "Track item quantities in a local JSON inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logJSON {
				logger.Init()
			} else {
				logger.InitConsole(opts.verbose)
			}
			return opts.loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&opts.file, "file", defaultFile, "inventory file path")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit structured JSON logs")

	root.AddCommand(
		newAddCommand(opts),
		newRemoveCommand(opts),
		newGetCommand(opts),
		newLowCommand(opts),
		newReportCommand(opts),
		newShellCommand(opts),
	)
	return root
}

// loadConfig merges the optional config file underneath the flags. An explicit
// --config path must exist; the default search locations may not.
func (o *options) loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	if o.cfgPath != "" {
		v.SetConfigFile(o.cfgPath)
	} else {
		v.SetConfigName(".invtrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgPath == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if !cmd.Flags().Changed("file") && v.GetString("file") != "" {
		o.file = v.GetString("file")
	}
	if !cmd.Flags().Changed("threshold") && v.IsSet("low_threshold") {
		o.lowThreshold = v.GetInt("low_threshold")
	}
	return nil
}
