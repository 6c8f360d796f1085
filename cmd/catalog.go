package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"interface-reconciler/core/config"
	"interface-reconciler/feature/catalog"
	"interface-reconciler/feature/interfaces/sources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for catalog import
	replaceCatalog bool
	dryRunImport   bool
	yesConfirm     bool
	batchSize      int
)

// catalogTablesCmd is the parent command for catalog table operations.
var catalogTablesCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalog database tables",
}

// catalogImportCmd copies the CSV catalog and mappings into the database.
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the CSV catalog and column mappings into the database",
	Long: `Reads the configured CSV catalog and column mapping files (local or from the
bucket) and inserts them into the catalog tables, so the database source can
serve them.

Examples:
  # Count what would be imported
  catalog import --dry-run

  # Replace the table contents without prompting
  catalog import --replace --yes`,
	RunE: runCatalogImport,
}

func init() {
	catalogTablesCmd.AddCommand(catalogImportCmd)

	catalogImportCmd.Flags().BoolVar(&replaceCatalog, "replace", false, "Delete existing rows before importing")
	catalogImportCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Load and count, write nothing")
	catalogImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	catalogImportCmd.Flags().IntVar(&batchSize, "batch-size", catalog.DefaultBatchSize, "Rows per insert statement")

	RootCmd.AddCommand(catalogTablesCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(true)
	if err != nil {
		return err
	}
	l := rt.logg
	defer l.Sync()

	rules, err := config.LoadRuleset(rt.cfg.Reconcile.Ruleset)
	if err != nil {
		return err
	}

	// The import always reads the CSV side, whatever source runs use
	csvCfg := rt.cfg.Catalog
	csvCfg.Source = config.SourceCSV
	catalogSrc, mappingSrc, err := sources.New(sources.Options{
		Catalog: csvCfg,
		Ruleset: rules,
		Client:  rt.store,
		Bucket:  rt.cfg.Storage.Bucket,
	})
	if err != nil {
		return err
	}

	if replaceCatalog && !dryRunImport && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	res, err := catalog.NewImporter(rt.db, l).Import(ctx, catalogSrc, mappingSrc, catalog.ImportOptions{
		Table:        rt.cfg.Catalog.Table,
		MappingTable: rt.cfg.Catalog.MappingTable,
		BatchSize:    batchSize,
		Replace:      replaceCatalog,
		DryRun:       dryRunImport,
	})
	if err != nil {
		return err
	}

	l.Info("Import report",
		zap.Int("records", res.Records),
		zap.Int("mappings", res.Mappings),
		zap.Int64("deleted_records", res.DeletedRecords),
		zap.Int64("deleted_mappings", res.DeletedMappings),
		zap.Bool("dry_run", res.DryRun),
	)
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to replace the catalog tables: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
