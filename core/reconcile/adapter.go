package reconcile

import "context"

// CatalogSource supplies the full interface catalog for one run.
// Implementations own the mapping from source columns to record fields and must
// assign every record a unique RowIndex.
type CatalogSource interface {
	// Name identifies the source in logs and reports (e.g. "csv", "database").
	Name() string

	// LoadCatalog returns every record in source order.
	LoadCatalog(ctx context.Context) ([]InterfaceRecord, error)
}

// MappingSource supplies the column mapping table that drives column checks.
type MappingSource interface {
	// LoadMappings returns every mapping row in source order.
	LoadMappings(ctx context.Context) ([]ColumnMapping, error)
}

// SchemaSource loads column metadata for one table.
type SchemaSource interface {
	// LoadColumns returns the table's columns keyed by upper-cased column name.
	// A table that does not exist yields an error wrapping ErrNotFound.
	LoadColumns(ctx context.Context, owner, table string) (map[string]ColumnDescriptor, error)
}
