package cmd

import (
	"context"

	"interface-reconciler/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the bucket layout, catalog objects and catalog tables",
	Long:  `Checks that the storage bucket has the required folders and catalog objects, and that the catalog tables match their models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// catalogCmd represents the integrity catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check catalog and mapping objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and migrate the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, catalogCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing tables and columns")
}

func runIntegrityChecks(ctx context.Context, runStructure, runCatalog, runSchema bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(runSchema && !runStructure)
	if err != nil {
		return err
	}
	logg := rt.logg
	defer logg.Sync()

	svc := integrity.NewService(rt.store, rt.cfg.Storage.Bucket, logg, rt.db, rt.cfg.Catalog)
	// fix only applies when a single check was selected
	single := !(runStructure && runCatalog && runSchema)

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if single && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else if single {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runCatalog {
		logg.Info("Checking catalog objects...", zap.Strings("objects", svc.CatalogObjects()))
		missing, err := svc.CheckCatalogObjects(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Catalog objects are present.")
		} else {
			logg.Warn("Missing catalog objects detected", zap.Strings("missing", missing))
		}
	}

	if runSchema {
		if rt.db == nil {
			logg.Warn("Schema check skipped, no database connection")
			return nil
		}

		if single && fixFlag {
			logg.Info("Migrating catalog tables...")
			if err := svc.FixSchema(); err != nil {
				return err
			}
		}

		logg.Info("Checking catalog schema integrity...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
			return nil
		}

		if report.Matched {
			logg.Info("Catalog schema matches expected definition.")
			return nil
		}

		logg.Warn("Catalog schema mismatches found")
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if tblReport.Status == "missing" {
				logg.Warn("Missing Table", zap.String("table", table))
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
		if single && !fixFlag {
			logg.Info("Run with --fix to migrate the catalog tables.")
		}
	}

	return nil
}
