package cmd

import (
	"fmt"
	"time"

	"interface-reconciler/core/config"
	"interface-reconciler/core/database"
	"interface-reconciler/core/logger"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage"
	"interface-reconciler/feature/interfaces"
	"interface-reconciler/feature/interfaces/sources"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the shared wiring of every command.
type runtime struct {
	cfg   *config.Config
	logg  *zap.Logger
	db    *gorm.DB
	store storage.Client
}

// bootstrap loads configuration, the logger, the storage client and the
// database. The database is optional unless required or the catalog lives in it.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logg: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB || cfg.Catalog.Source == config.SourceDatabase {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to catalog database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("name", cfg.Database.Name),
		)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	rt.store = store

	return rt, nil
}

// interfacesOptions loads the ruleset and builds the engine and sources.
// A positive schemaTTL shares table metadata across runs.
func (rt *runtime) interfacesOptions(schemaTTL time.Duration) (interfaces.Options, error) {
	rules, err := config.LoadRuleset(rt.cfg.Reconcile.Ruleset)
	if err != nil {
		return interfaces.Options{}, err
	}
	rules.Apply(rt.cfg.Reconcile)

	engine, err := reconcile.NewEngine(rules.Config, rt.logg)
	if err != nil {
		return interfaces.Options{}, err
	}

	catalog, mappings, err := sources.New(sources.Options{
		Catalog: rt.cfg.Catalog,
		Ruleset: rules,
		DB:      rt.db,
		Client:  rt.store,
		Bucket:  rt.cfg.Storage.Bucket,
	})
	if err != nil {
		return interfaces.Options{}, err
	}

	opts := interfaces.Options{
		Engine:       engine,
		Catalog:      catalog,
		Mappings:     mappings,
		Client:       rt.store,
		Bucket:       rt.cfg.Storage.Bucket,
		ReportPrefix: rt.cfg.Reconcile.ReportPrefix,
		SchemaTTL:    schemaTTL,
		Logger:       rt.logg,
	}
	if rt.db != nil {
		opts.Schema = sources.NewDBSchema(rt.db)
	}
	return opts, nil
}
