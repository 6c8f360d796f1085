// Package sources implements the catalog, mapping and schema adapters of the
// reconciliation engine.
//
// CSV sources read a header row and resolve configured header names case and
// space insensitively; files come from local disk or the storage bucket.
// Database sources read whole tables through GORM and coerce driver values with
// core/utils. DBSchema serves column metadata from core/database.
package sources
