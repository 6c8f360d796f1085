// Package interfaces implements the interface reconciliation feature.
//
// It pairs every base interface of the catalog with its counterpart and checks
// the column mapping table against the live database schema, using the
// core/reconcile engine. Catalog and mappings are read through the sources
// subpackage, from CSV files, bucket objects or database tables.
//
// # Components
//
//   - Service: Loads the sources, runs the engine and builds reports.
//   - Export: Encodes reports as JSON, uploads them, and flattens findings to CSV.
//   - Handler: Exposes HTTP endpoints for runs and single-row details.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /interfaces/reconcile : Match and validate every base interface.
//   - GET /interfaces/columns : Run the column compatibility checks.
//   - POST /interfaces/report : Run both passes and store the report under reports/.
//   - GET /interfaces/reports : List stored report keys.
//   - GET /interfaces/:row : Reconcile one catalog row.
package interfaces
