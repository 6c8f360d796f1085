// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns reads column metadata for an (owner, table) pair from
// information_schema.columns, or from PRAGMA table_info on SQLite, and returns it
// in catalog notation: upper-case type name, textual size, "Y"/"N" nullability.
// The column compatibility checks and the catalog schema integrity check are
// built on it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "LHOWN", "TB_ORDER")
package database
