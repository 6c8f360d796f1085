package catalog

import (
	"context"
	"errors"
	"fmt"

	"interface-reconciler/core/reconcile"
	"interface-reconciler/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows inserted per statement.
const DefaultBatchSize = 500

// ImportOptions controls how a catalog is copied into the database.
type ImportOptions struct {
	Table        string
	MappingTable string
	// BatchSize <= 0 uses DefaultBatchSize.
	BatchSize int
	// Replace deletes existing rows first. Without it rows are appended.
	Replace bool
	// DryRun loads and counts but writes nothing.
	DryRun bool
}

// ImportResult summarizes one import.
type ImportResult struct {
	Records         int   `json:"records"`
	Mappings        int   `json:"mappings"`
	DeletedRecords  int64 `json:"deleted_records"`
	DeletedMappings int64 `json:"deleted_mappings"`
	DryRun          bool  `json:"dry_run"`
}

// Importer copies a catalog and its column mappings into the catalog tables,
// so the database source can serve them.
type Importer struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewImporter creates a new importer.
func NewImporter(db *gorm.DB, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{db: db, logger: logger}
}

// Import loads both sources and writes them in one transaction. Rows keep
// source order, so ordering by id reproduces the source row order.
func (im *Importer) Import(ctx context.Context, catalog reconcile.CatalogSource, mappings reconcile.MappingSource, opts ImportOptions) (*ImportResult, error) {
	if im.db == nil {
		return nil, errors.New("database connection is nil")
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	records, err := catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", catalog.Name(), err)
	}
	var maps []reconcile.ColumnMapping
	if mappings != nil {
		if maps, err = mappings.LoadMappings(ctx); err != nil {
			return nil, fmt.Errorf("failed to load column mappings: %w", err)
		}
	}

	result := &ImportResult{Records: len(records), Mappings: len(maps), DryRun: opts.DryRun}
	if opts.DryRun {
		im.logger.Info("Dry-run import, no changes made",
			zap.Int("records", result.Records),
			zap.Int("mappings", result.Mappings),
		)
		return result, nil
	}

	rows := make([]models.InterfaceRow, len(records))
	for i, r := range records {
		rows[i] = models.FromRecord(r)
	}
	mappingRows := make([]models.ColumnMappingRow, len(maps))
	for i, m := range maps {
		mappingRows[i] = models.FromMapping(m)
	}

	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Replace {
			res := tx.Table(opts.Table).Where("1 = 1").Delete(&models.InterfaceRow{})
			if res.Error != nil {
				return fmt.Errorf("failed to clear %s: %w", opts.Table, res.Error)
			}
			result.DeletedRecords = res.RowsAffected

			if mappings != nil {
				res = tx.Table(opts.MappingTable).Where("1 = 1").Delete(&models.ColumnMappingRow{})
				if res.Error != nil {
					return fmt.Errorf("failed to clear %s: %w", opts.MappingTable, res.Error)
				}
				result.DeletedMappings = res.RowsAffected
			}
		}

		if len(rows) > 0 {
			if err := tx.Table(opts.Table).CreateInBatches(rows, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert into %s: %w", opts.Table, err)
			}
		}
		if len(mappingRows) > 0 {
			if err := tx.Table(opts.MappingTable).CreateInBatches(mappingRows, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert into %s: %w", opts.MappingTable, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	im.logger.Info("Catalog imported",
		zap.String("table", opts.Table),
		zap.Int("records", result.Records),
		zap.Int("mappings", result.Mappings),
		zap.Int64("deleted_records", result.DeletedRecords),
	)
	return result, nil
}
