package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"invtrack/pkg/inventory"
	"invtrack/pkg/inventory/file"
	"invtrack/pkg/logger"
)

// newAddCommand adds quantity of an item and persists the result.
func newAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME QTY",
		Short: "Add quantity of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store := file.New(opts.file)
			inv, err := store.Load(ctx)
			if err != nil {
				return err
			}
			total, err := inv.Add(args[0], qty, nil)
			if err != nil {
				return err
			}
			if err := store.Save(ctx, inv); err != nil {
				return err
			}
			logger.Log.Info("added item",
				zap.String("item", args[0]), zap.Int("qty", qty), zap.Int("total", total))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", args[0], total)
			return nil
		},
	}
}

// newRemoveCommand removes quantity of an item and persists the result.
func newRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME QTY",
		Short: "Remove quantity of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store := file.New(opts.file)
			inv, err := store.Load(ctx)
			if err != nil {
				return err
			}
			rest, err := inv.Remove(args[0], qty, nil)
			if err != nil {
				return err
			}
			if err := store.Save(ctx, inv); err != nil {
				return err
			}
			logger.Log.Info("removed item",
				zap.String("item", args[0]), zap.Int("qty", qty), zap.Int("remaining", rest))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", args[0], rest)
			return nil
		},
	}
}

// newGetCommand prints the on-hand quantity for an item. Absent items are 0,
// not an error.
func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the quantity of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := file.New(opts.file).Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", inv.Quantity(args[0]))
			return nil
		},
	}
}

// newLowCommand lists items below the low-stock threshold.
func newLowCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items below the low-stock threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := file.New(opts.file).Load(cmd.Context())
			if err != nil {
				return err
			}
			writeLow(cmd.OutOrStdout(), inv, opts.lowThreshold)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.lowThreshold, "threshold", defaultLowThreshold, "low-stock threshold")
	return cmd
}

// newReportCommand prints the full inventory sorted by item name.
func newReportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print all items and quantities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := file.New(opts.file).Load(cmd.Context())
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

// parseQuantity parses a decimal quantity. Input is parsed against the
// integer grammar only, never evaluated.
func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, &inventory.ValidationError{Field: "quantity", Value: s, Reason: "must be an integer"}
	}
	return qty, nil
}

func writeLow(out io.Writer, inv *inventory.Inventory, threshold int) {
	low := inv.Low(threshold)
	if len(low) == 0 {
		fmt.Fprintln(out, "no low-stock items")
		return
	}
	fmt.Fprintln(out, strings.Join(low, ", "))
}

func writeReport(out io.Writer, inv *inventory.Inventory) {
	items := inv.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "no items in stock")
		return
	}
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s: %d\n", name, items[name])
	}
}
