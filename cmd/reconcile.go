package cmd

import (
	"context"
	"fmt"

	"interface-reconciler/core/reconcile"
	"interface-reconciler/feature/interfaces"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile commands
	outputFile  string
	findingsCSV string
	uploadFlag  bool
	verboseFlag bool
	workersFlag int
	failOnError bool
)

// reconcileCmd runs both passes when called without a subcommand.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the interface catalog and check column mappings",
	Long: `Pairs every base interface with its counterpart, validates the paired fields
and checks the column mapping table against the database schema.

Examples:
  # Full run, summary only
  reconcile

  # Interfaces only, detailed JSON and a findings spreadsheet
  reconcile interfaces -o report.json --csv findings.csv

  # Column checks, report stored in the bucket under reports/
  reconcile columns --upload`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd.Context(), func(ctx context.Context, svc *interfaces.Service) (*reconcile.Report, error) {
			return svc.Run(ctx)
		})
	},
}

var reconcileInterfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "Match and validate base interfaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd.Context(), func(ctx context.Context, svc *interfaces.Service) (*reconcile.Report, error) {
			return svc.ReconcileInterfaces(ctx)
		})
	},
}

var reconcileColumnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Check column mapping compatibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReconcile(cmd.Context(), func(ctx context.Context, svc *interfaces.Service) (*reconcile.Report, error) {
			return svc.CheckColumns(ctx)
		})
	},
}

func init() {
	reconcileCmd.AddCommand(reconcileInterfacesCmd, reconcileColumnsCmd)

	flags := reconcileCmd.PersistentFlags()
	flags.StringVarP(&outputFile, "output", "o", "", "Write the JSON report to this file")
	flags.StringVar(&findingsCSV, "csv", "", "Write one line per finding to this CSV file")
	flags.BoolVar(&uploadFlag, "upload", false, "Store the JSON report in the bucket")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Keep OK findings in the report")
	flags.IntVarP(&workersFlag, "workers", "w", 0, "Concurrent workers (0 keeps the configured value)")
	flags.BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any result has ERROR status")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(ctx context.Context, run func(context.Context, *interfaces.Service) (*reconcile.Report, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logg.Sync()

	if verboseFlag {
		rt.cfg.Reconcile.Verbose = true
	}
	if workersFlag > 0 {
		rt.cfg.Reconcile.Workers = workersFlag
	}

	opts, err := rt.interfacesOptions(0)
	if err != nil {
		return err
	}
	svc := interfaces.NewService(opts)

	report, err := run(ctx, svc)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := interfaces.WriteReportFile(outputFile, report); err != nil {
			return err
		}
		rt.logg.Info("Detailed JSON report saved", zap.String("file", outputFile))
	}

	if findingsCSV != "" {
		if err := interfaces.WriteFindingsFile(findingsCSV, report); err != nil {
			return err
		}
		rt.logg.Info("Findings CSV saved", zap.String("file", findingsCSV))
	}

	if uploadFlag {
		if _, err := svc.Export(ctx, report); err != nil {
			return err
		}
	}

	printSummary(report)

	if failOnError && hasErrors(report) {
		return fmt.Errorf("reconciliation %s found errors", report.RunID)
	}
	return nil
}

func hasErrors(report *reconcile.Report) bool {
	return report.Summary.RecordsByStatus[reconcile.SeverityError] > 0 ||
		report.Summary.ColumnsByStatus[reconcile.SeverityError] > 0
}

func printSummary(report *reconcile.Report) {
	s := report.Summary

	fmt.Println("\n=== Interface Reconciliation ===")
	fmt.Printf("Run ID: %s\n", report.RunID)
	fmt.Printf("Source: %s\n", report.Source)
	fmt.Printf("Base Records: %d\n", s.BaseRecords)
	fmt.Printf("Matched: %d\n", s.Matched)
	for _, rule := range []reconcile.ResolutionRule{
		reconcile.RuleSingle, reconcile.RuleBothMatched,
		reconcile.RuleSenderIdentical, reconcile.RuleReceiverIdentical,
	} {
		if n := s.MatchedByRule[rule]; n > 0 {
			fmt.Printf("  by %s: %d\n", rule, n)
		}
	}
	fmt.Printf("Unmatched: %d\n", s.Unmatched)
	fmt.Printf("Ambiguous: %d\n", s.Ambiguous)
	fmt.Printf("Records OK/WARNING/ERROR: %d/%d/%d\n",
		s.RecordsByStatus[reconcile.SeverityOK],
		s.RecordsByStatus[reconcile.SeverityWarning],
		s.RecordsByStatus[reconcile.SeverityError],
	)

	if s.ColumnMappings > 0 {
		fmt.Printf("Column Mappings: %d\n", s.ColumnMappings)
		fmt.Printf("Columns OK/WARNING/ERROR: %d/%d/%d\n",
			s.ColumnsByStatus[reconcile.SeverityOK],
			s.ColumnsByStatus[reconcile.SeverityWarning],
			s.ColumnsByStatus[reconcile.SeverityError],
		)
	}

	for _, r := range report.Unresolved() {
		rows := make([]int, 0, len(r.Candidates))
		for _, c := range r.Candidates {
			rows = append(rows, c.Record.RowIndex)
		}
		fmt.Printf("Ambiguous row %d (%s): candidates %v\n", r.Base.RowIndex, r.Base.InterfaceName, rows)
	}

	fmt.Printf("Execution Time: %s\n", report.ExecutionTime)
}
