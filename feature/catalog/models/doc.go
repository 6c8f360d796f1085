// Package models defines the GORM models of the catalog database: the interface
// catalog table and the column mapping table.
//
// The gorm tags are the expected schema used by the catalog schema integrity
// check, and AutoMigrate on All() creates both tables from scratch.
package models
