package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"interface-reconciler/core/config"
	"interface-reconciler/core/database"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/utils"

	"gorm.io/gorm"
)

// DBCatalog reads the interface catalog from a database table. Row indexes are
// positions in the ordered result.
type DBCatalog struct {
	db      *gorm.DB
	table   string
	orderBy string
	columns map[string]string
}

// NewDBCatalog creates a catalog source over table. orderBy may be empty.
func NewDBCatalog(db *gorm.DB, table, orderBy string, columns map[string]string) *DBCatalog {
	return &DBCatalog{db: db, table: table, orderBy: orderBy, columns: withDefaults(columns, reconcile.RecordFields)}
}

// Name returns the source kind.
func (c *DBCatalog) Name() string {
	return config.SourceDatabase
}

// LoadCatalog reads every row of the catalog table.
func (c *DBCatalog) LoadCatalog(ctx context.Context) ([]reconcile.InterfaceRecord, error) {
	rows, err := loadRows(ctx, c.db, c.table, c.orderBy)
	if err != nil {
		return nil, err
	}
	if err := checkColumns("db_catalog_columns", rows, c.columns, requiredCatalogFields); err != nil {
		return nil, err
	}

	records := make([]reconcile.InterfaceRecord, 0, len(rows))
	for i, row := range rows {
		rec := reconcile.InterfaceRecord{RowIndex: i}
		for field, col := range c.columns {
			rec.SetField(field, utils.ToString(row[strings.ToUpper(col)]))
		}
		records = append(records, rec)
	}
	return records, nil
}

// DBMappings reads the column mapping table from a database table.
type DBMappings struct {
	db      *gorm.DB
	table   string
	orderBy string
	columns map[string]string
}

// NewDBMappings creates a mapping source over table.
func NewDBMappings(db *gorm.DB, table, orderBy string, columns map[string]string) *DBMappings {
	return &DBMappings{db: db, table: table, orderBy: orderBy, columns: withDefaults(columns, config.MappingFields)}
}

// LoadMappings reads every row of the mapping table.
func (m *DBMappings) LoadMappings(ctx context.Context) ([]reconcile.ColumnMapping, error) {
	rows, err := loadRows(ctx, m.db, m.table, m.orderBy)
	if err != nil {
		return nil, err
	}
	if err := checkColumns("db_mapping_columns", rows, m.columns, requiredMappingFields); err != nil {
		return nil, err
	}

	mappings := make([]reconcile.ColumnMapping, 0, len(rows))
	for i, row := range rows {
		get := func(field string) string {
			return utils.RowString(row, strings.ToUpper(m.columns[field]))
		}
		mappings = append(mappings, buildMapping(i, get))
	}
	return mappings, nil
}

// loadRows returns the table rows with upper-cased column keys.
func loadRows(ctx context.Context, db *gorm.DB, table, orderBy string) ([]map[string]any, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	var raw []map[string]any
	q := db.WithContext(ctx).Table(table)
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	if err := q.Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}

	rows := make([]map[string]any, len(raw))
	for i, r := range raw {
		row := make(map[string]any, len(r))
		for k, v := range r {
			row[strings.ToUpper(k)] = v
		}
		rows[i] = row
	}
	return rows, nil
}

// checkColumns verifies required columns against the first row. An empty table
// has nothing to verify.
func checkColumns(section string, rows []map[string]any, columns map[string]string, required []string) error {
	if len(rows) == 0 {
		return nil
	}
	for _, field := range required {
		if _, ok := rows[0][strings.ToUpper(columns[field])]; !ok {
			return &reconcile.ConfigurationError{
				Section: section,
				Message: fmt.Sprintf("column %q for %s not found", columns[field], field),
			}
		}
	}
	return nil
}

// DBSchema loads column metadata through the database inspector.
type DBSchema struct {
	db *gorm.DB
}

// NewDBSchema creates a schema source.
func NewDBSchema(db *gorm.DB) *DBSchema {
	return &DBSchema{db: db}
}

// LoadColumns returns the columns of owner.table keyed by upper-cased name.
func (s *DBSchema) LoadColumns(ctx context.Context, owner, table string) (map[string]reconcile.ColumnDescriptor, error) {
	if s.db == nil {
		return nil, errors.New("database connection is nil")
	}

	cols, err := database.GetTableColumns(s.db.WithContext(ctx), owner, table)
	if err != nil {
		if errors.Is(err, database.ErrTableNotFound) {
			name := table
			if owner != "" {
				name = owner + "." + table
			}
			return nil, &reconcile.NotFoundError{Resource: "table", Name: name}
		}
		return nil, err
	}

	out := make(map[string]reconcile.ColumnDescriptor, len(cols))
	for _, c := range cols {
		out[strings.ToUpper(c.Name)] = reconcile.ColumnDescriptor{
			Name:     c.Name,
			DataType: c.DataType,
			Size:     c.Size,
			Nullable: c.Nullable,
		}
	}
	return out, nil
}
