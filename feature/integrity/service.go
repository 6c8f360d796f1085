package integrity

import (
	"context"

	"interface-reconciler/core/config"
	"interface-reconciler/core/storage"
	"interface-reconciler/feature/catalog/models"
	"interface-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	db      *gorm.DB
	catalog config.CatalogConfig
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, catalog config.CatalogConfig) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		db:      db,
		catalog: catalog,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CatalogObjects returns the bucket keys the configured CSV source reads.
// Local files and the database source need no objects.
func (s *Service) CatalogObjects() []string {
	keys := []string{}
	if s.catalog.Source != config.SourceCSV {
		return keys
	}
	if s.catalog.File == "" {
		keys = append(keys, s.catalog.Object)
	}
	if s.catalog.MappingFile == "" {
		keys = append(keys, s.catalog.MappingObject)
	}
	return keys
}

// CheckCatalogObjects returns the catalog objects missing from the bucket.
func (s *Service) CheckCatalogObjects(ctx context.Context) ([]string, error) {
	return checks.CheckObjects(ctx, s.client, s.bucket, s.CatalogObjects())
}

// ExpectedTables binds the configured table names to their models.
func (s *Service) ExpectedTables() []checks.ExpectedTable {
	return []checks.ExpectedTable{
		{Name: s.catalog.Table, Model: &models.InterfaceRow{}},
		{Name: s.catalog.MappingTable, Model: &models.ColumnMappingRow{}},
	}
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.ExpectedTables())
}

// FixSchema migrates the catalog tables.
func (s *Service) FixSchema() error {
	if err := checks.FixSchema(s.db, s.ExpectedTables()); err != nil {
		s.logger.Error("Failed to migrate catalog tables", zap.Error(err))
		return err
	}
	s.logger.Info("Catalog tables migrated",
		zap.String("table", s.catalog.Table),
		zap.String("mapping_table", s.catalog.MappingTable),
	)
	return nil
}
