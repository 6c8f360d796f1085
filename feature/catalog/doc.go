// Package catalog owns the catalog database tables.
//
// The models subpackage declares the table layouts. Importer copies a catalog
// and its column mappings from any source, typically the CSV files, into those
// tables so later runs can use the database source.
package catalog
