package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ErrTableNotFound is returned when a table has no visible columns.
var ErrTableNotFound = errors.New("table not found")

// ColumnInfo is the metadata of one column in catalog notation: upper-case type
// name without length, size as text and nullability as "Y" or "N".
type ColumnInfo struct {
	Name     string
	DataType string
	Size     string
	Nullable string
}

// informationColumn is one row of information_schema.columns.
type informationColumn struct {
	ColumnName             string
	DataType               string
	CharacterMaximumLength *int64
	NumericPrecision       *int64
	IsNullable             string
}

// GetTableColumns retrieves the column definitions of owner.table in ordinal
// order. An empty owner means the connection's current schema. A table without
// columns yields an error wrapping ErrTableNotFound.
func GetTableColumns(db *gorm.DB, owner, table string) ([]ColumnInfo, error) {
	var (
		columns []ColumnInfo
		err     error
	)
	if db.Dialector.Name() == DriverSQLite {
		columns, err = sqliteColumns(db, table)
	} else {
		columns, err = informationSchemaColumns(db, owner, table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", qualifiedTable(owner, table), err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, qualifiedTable(owner, table))
	}
	return columns, nil
}

func informationSchemaColumns(db *gorm.DB, owner, table string) ([]ColumnInfo, error) {
	schemaExpr := "LOWER(?)"
	args := []any{owner, table}
	if strings.TrimSpace(owner) == "" {
		args = []any{table}
		if db.Dialector.Name() == DriverPostgres {
			schemaExpr = "current_schema()"
		} else {
			schemaExpr = "DATABASE()"
		}
	}

	query := "SELECT column_name AS column_name, data_type AS data_type, " +
		"character_maximum_length AS character_maximum_length, numeric_precision AS numeric_precision, " +
		"is_nullable AS is_nullable FROM information_schema.columns " +
		"WHERE LOWER(table_schema) = " + schemaExpr + " AND LOWER(table_name) = LOWER(?) " +
		"ORDER BY ordinal_position"

	var rows []informationColumn
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, r := range rows {
		size := ""
		switch {
		case r.CharacterMaximumLength != nil:
			size = strconv.FormatInt(*r.CharacterMaximumLength, 10)
		case r.NumericPrecision != nil:
			size = strconv.FormatInt(*r.NumericPrecision, 10)
		}
		nullable := "N"
		if strings.EqualFold(strings.TrimSpace(r.IsNullable), "YES") {
			nullable = "Y"
		}
		columns = append(columns, ColumnInfo{
			Name:     strings.ToUpper(r.ColumnName),
			DataType: strings.ToUpper(r.DataType),
			Size:     size,
			Nullable: nullable,
		})
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	// SQLite uses PRAGMA table_info and has no owner concept
	type sqliteColumn struct {
		Cid     int
		Name    string
		Type    string
		Notnull int
		Pk      int
	}
	var rows []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", strings.ReplaceAll(table, "'", "''"))).Scan(&rows).Error; err != nil {
		return nil, err
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, r := range rows {
		dataType, size := SplitType(r.Type)
		nullable := "Y"
		if r.Notnull == 1 || r.Pk > 0 {
			nullable = "N"
		}
		columns = append(columns, ColumnInfo{
			Name:     strings.ToUpper(r.Name),
			DataType: dataType,
			Size:     size,
			Nullable: nullable,
		})
	}
	return columns, nil
}

// SplitType turns "varchar(50)" into ("VARCHAR", "50") and "NUMERIC(10,2)" into ("NUMERIC", "10").
func SplitType(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	open := strings.IndexByte(raw, '(')
	if open < 0 {
		return strings.ToUpper(raw), ""
	}
	name := strings.ToUpper(strings.TrimSpace(raw[:open]))
	inner := strings.TrimSuffix(raw[open+1:], ")")
	if comma := strings.IndexByte(inner, ','); comma >= 0 {
		inner = inner[:comma]
	}
	return name, strings.TrimSpace(inner)
}

func qualifiedTable(owner, table string) string {
	if strings.TrimSpace(owner) == "" {
		return table
	}
	return owner + "." + table
}
