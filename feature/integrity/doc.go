// Package integrity provides health checks for the reconciler's inputs.
//
// It validates the infrastructure a reconciliation run depends on, before any
// record is matched.
//
// # Checks Provided
//
//   - Structure: Checks that the catalog/, mappings/ and reports/ folders exist in the bucket.
//   - Catalog: Verifies that the configured catalog and column mapping CSV objects exist.
//   - Schema: Validates the catalog and column mapping tables against their GORM models.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/catalog : Runs catalog object check.
//   - GET /integrity/schema : Runs schema check (supports ?fix=true, which migrates the tables).
package integrity
