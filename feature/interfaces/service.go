package interfaces

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interface-reconciler/core/logger"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSchemaUnavailable is returned by column checks when no schema source is wired.
var ErrSchemaUnavailable = errors.New("schema source unavailable: database connection required")

// Options wires a Service.
type Options struct {
	Engine   *reconcile.Engine
	Catalog  reconcile.CatalogSource
	Mappings reconcile.MappingSource
	// Schema may be nil, column checks then fail with ErrSchemaUnavailable.
	Schema reconcile.SchemaSource
	Client storage.Client
	Bucket string
	// ReportPrefix is the storage prefix of uploaded reports.
	ReportPrefix string
	// SchemaTTL > 0 shares one schema cache across runs, 0 loads fresh metadata per run.
	SchemaTTL time.Duration
	Logger    *zap.Logger
}

// Service runs reconciliations against the configured sources.
type Service struct {
	engine   *reconcile.Engine
	catalog  reconcile.CatalogSource
	mappings reconcile.MappingSource
	schema   reconcile.SchemaSource
	client   storage.Client
	bucket   string
	prefix   string
	cache    *reconcile.SchemaCache
	logger   *zap.Logger
}

// NewService creates a new interfaces service.
func NewService(opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	s := &Service{
		engine:   opts.Engine,
		catalog:  opts.Catalog,
		mappings: opts.Mappings,
		schema:   opts.Schema,
		client:   opts.Client,
		bucket:   opts.Bucket,
		prefix:   opts.ReportPrefix,
		logger:   l,
	}
	if opts.Schema != nil && opts.SchemaTTL > 0 {
		s.cache = reconcile.NewSchemaCache(opts.Schema, opts.SchemaTTL)
	}
	return s
}

func (s *Service) schemaCache() (*reconcile.SchemaCache, error) {
	if s.schema == nil {
		return nil, ErrSchemaUnavailable
	}
	if s.cache != nil {
		return s.cache, nil
	}
	return reconcile.NewSchemaCache(s.schema, 0), nil
}

func (s *Service) loadCatalog(ctx context.Context) ([]reconcile.InterfaceRecord, error) {
	catalog, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", s.catalog.Name(), err)
	}
	return catalog, nil
}

// ReconcileInterfaces matches and validates every base record of the catalog.
func (s *Service) ReconcileInterfaces(ctx context.Context) (*reconcile.Report, error) {
	runID, started := uuid.NewString(), time.Now()
	l := logger.WithRun(s.logger, runID)

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.engine.ReconcileAll(ctx, catalog)
	if err != nil {
		return nil, err
	}

	report := reconcile.BuildReport(runID, s.catalog.Name(), started, records, nil)
	l.Info("Interface reconciliation completed",
		zap.Int("base_records", report.Summary.BaseRecords),
		zap.Int("matched", report.Summary.Matched),
		zap.Int("unmatched", report.Summary.Unmatched),
		zap.Int("ambiguous", report.Summary.Ambiguous),
	)
	return report, nil
}

// CheckColumns runs the column compatibility checks over the mapping table.
func (s *Service) CheckColumns(ctx context.Context) (*reconcile.Report, error) {
	runID, started := uuid.NewString(), time.Now()
	l := logger.WithRun(s.logger, runID)

	columns, err := s.checkColumns(ctx)
	if err != nil {
		return nil, err
	}

	report := reconcile.BuildReport(runID, s.catalog.Name(), started, nil, columns)
	l.Info("Column check completed",
		zap.Int("mappings", report.Summary.ColumnMappings),
		zap.Int("warnings", report.Summary.ColumnsByStatus[reconcile.SeverityWarning]),
		zap.Int("errors", report.Summary.ColumnsByStatus[reconcile.SeverityError]),
	)
	return report, nil
}

func (s *Service) checkColumns(ctx context.Context) ([]reconcile.ComparisonResult, error) {
	cache, err := s.schemaCache()
	if err != nil {
		return nil, err
	}
	mappings, err := s.mappings.LoadMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load column mappings: %w", err)
	}
	return s.engine.CheckColumns(ctx, mappings, cache)
}

// Run performs both passes. Without a schema source the column pass is skipped.
func (s *Service) Run(ctx context.Context) (*reconcile.Report, error) {
	runID, started := uuid.NewString(), time.Now()
	l := logger.WithRun(s.logger, runID)

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.engine.ReconcileAll(ctx, catalog)
	if err != nil {
		return nil, err
	}

	columns, err := s.checkColumns(ctx)
	switch {
	case errors.Is(err, ErrSchemaUnavailable):
		l.Warn("Column checks skipped", zap.Error(err))
	case err != nil:
		return nil, err
	}

	report := reconcile.BuildReport(runID, s.catalog.Name(), started, records, columns)
	l.Info("Reconciliation run completed",
		zap.Int("base_records", report.Summary.BaseRecords),
		zap.Int("column_mappings", report.Summary.ColumnMappings),
		zap.String("duration", report.ExecutionTime),
	)
	return report, nil
}

// Detail reconciles a single catalog row.
func (s *Service) Detail(ctx context.Context, row int) (*reconcile.RecordResult, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.ReconcileOne(ctx, catalog, row)
}

// Export uploads the report as JSON and returns its object key.
func (s *Service) Export(ctx context.Context, report *reconcile.Report) (string, error) {
	if s.client == nil {
		return "", errors.New("storage client is nil")
	}
	key, err := UploadReport(ctx, s.client, s.bucket, s.prefix, report)
	if err != nil {
		return "", err
	}
	logger.WithRun(s.logger, report.RunID).Info("Report uploaded", zap.String("key", key))
	return key, nil
}

// ListReports returns the keys of every stored report.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, errors.New("storage client is nil")
	}
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
