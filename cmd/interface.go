package cmd

import (
	"context"
	"fmt"
	"strconv"

	"interface-reconciler/core/reconcile"
	"interface-reconciler/feature/interfaces"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// interfaceDetailCmd shows the reconciliation of one catalog row
var interfaceDetailCmd = &cobra.Command{
	Use:   "interface [row]",
	Short: "View the counterpart and field findings of one catalog row",
	Long:  `Reconciles a single catalog row against the whole catalog, whether or not it is a base record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := strconv.Atoi(args[0])
		if err != nil || row < 0 {
			return fmt.Errorf("row must be a non-negative integer, got %q", args[0])
		}
		return runInterfaceDetail(cmd.Context(), row)
	},
}

func init() {
	RootCmd.AddCommand(interfaceDetailCmd)
}

func runInterfaceDetail(ctx context.Context, row int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logg.Sync()

	opts, err := rt.interfacesOptions(0)
	if err != nil {
		return err
	}
	svc := interfaces.NewService(opts)

	rt.logg.Info("Checking catalog row...", zap.Int("row", row))
	result, err := svc.Detail(ctx, row)
	if err != nil {
		return err
	}

	printDetail(result)
	return nil
}

func printDetail(r *reconcile.RecordResult) {
	fmt.Println("\n--- Interface Detail View ---")
	fmt.Printf("Row:            %d\n", r.Base.RowIndex)
	fmt.Printf("Interface:      %s\n", r.Base.InterfaceName)
	fmt.Printf("Sender:         %s\n", r.Base.SenderSystem)
	fmt.Printf("Receiver:       %s\n", r.Base.ReceiverSystem)
	fmt.Println("-----------------------------")
	fmt.Printf("Match:          %s\n", r.MatchStatus)
	if r.Match != nil {
		fmt.Printf("Counterpart:    row %d (%s -> %s)\n",
			r.Match.Record.RowIndex, r.Match.Record.SenderSystem, r.Match.Record.ReceiverSystem)
		fmt.Printf("Rule:           %s\n", r.Rule)
	}
	for _, c := range r.Candidates {
		if r.Match == nil {
			fmt.Printf("Candidate:      row %d (%s -> %s)\n", c.Record.RowIndex, c.Record.SenderSystem, c.Record.ReceiverSystem)
		}
	}

	statusColor := "\033[32m" // Green
	if r.Status == reconcile.SeverityError {
		statusColor = "\033[31m" // Red
	} else if r.Status == reconcile.SeverityWarning {
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	fmt.Printf("Status:         %s%s%s\n", statusColor, r.Status, resetColor)

	if len(r.Findings) > 0 {
		fmt.Println("\nFindings:")
		for _, f := range r.Findings {
			fmt.Printf("- [%s] %s: %s\n", f.Severity, f.Field, f.Message)
		}
	}
	fmt.Println("-----------------------------")
}
