package checks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"interface-reconciler/core/database"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/utils"

	"gorm.io/gorm"
)

// ExpectedTable binds a table name to the GORM model describing its layout.
type ExpectedTable struct {
	Name  string
	Model any
}

// SchemaReport strictly types the result of a schema integrity check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport is the outcome for one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies the catalog tables using the GORM models as the source of truth.
func CheckSchema(db *gorm.DB, tables []ExpectedTable) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(tables)),
		Errors:  []string{},
	}

	for _, table := range tables {
		t := reflect.TypeOf(table.Model)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model for %s is not a struct", table.Name)
		}

		tblReport := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         "ok",
		}

		actualCols, err := database.GetTableColumns(db, "", table.Name)
		if errors.Is(err, database.ErrTableNotFound) {
			tblReport.Status = "missing"
			report.Tables[table.Name] = tblReport
			report.Matched = false
			continue
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table.Name, err))
			report.Matched = false
			continue
		}

		actualMap := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actualMap[col.Name] = col
		}

		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("gorm")
			colName := strings.ToUpper(parseGormTag(tag, "column"))
			if colName == "" {
				continue
			}

			actCol, exists := actualMap[colName]
			if !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				tblReport.Status = "error"
				report.Matched = false
				continue
			}

			expType := parseGormTag(tag, "type")
			if expType == "" {
				continue
			}
			if mismatch := typeMismatch(expType, actCol); mismatch != "" {
				tblReport.TypeMismatches = append(tblReport.TypeMismatches, colName+": "+mismatch)
				tblReport.Status = "error"
				report.Matched = false
			}
		}

		report.Tables[table.Name] = tblReport
	}

	return report, nil
}

// FixSchema creates missing tables and columns from the models.
func FixSchema(db *gorm.DB, tables []ExpectedTable) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	for _, table := range tables {
		if err := db.Table(table.Name).AutoMigrate(table.Model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table.Name, err)
		}
	}
	return nil
}

var textTypes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(reconcile.DefaultTextTypes))
	for _, t := range reconcile.DefaultTextTypes {
		m[t] = struct{}{}
	}
	return m
}()

// typeMismatch compares a "varchar(100)" style tag with the live column. Text
// types are interchangeable but must be at least as wide as declared.
func typeMismatch(expected string, actual database.ColumnInfo) string {
	expName, expSize := database.SplitType(expected)
	actName := reconcile.NormalizeType(actual.DataType)

	_, expText := textTypes[expName]
	_, actText := textTypes[actName]
	switch {
	case expText && actText:
		if expSize != "" && actual.Size != "" && utils.ToInt(actual.Size) < utils.ToInt(expSize) {
			return fmt.Sprintf("expected %s, got %s(%s)", strings.ToLower(expected), strings.ToLower(actName), actual.Size)
		}
		return ""
	case expName != actName:
		return fmt.Sprintf("expected %s, got %s", strings.ToLower(expected), strings.ToLower(actName))
	default:
		return ""
	}
}

func parseGormTag(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(p, key+":"); ok {
			return v
		}
	}
	return ""
}
