// Package reconcile implements the interface reconciliation and compatibility
// validation engine.
//
// An interface catalog describes system-to-system data feeds whose sender and
// receiver codes are migrating from one naming scheme to another. For every base
// record (a record still carrying an old-scheme token) the engine finds its
// counterpart under the new scheme, validates the pair field by field, and
// independently checks the database columns each feed maps between.
//
// # Components
//
//  1. Transform: ordered literal token rewrites (RewriteRules).
//  2. FindCandidates / CandidateIndex: records with the same interface name whose
//     sender or receiver equals a single-rule rewrite of the base value.
//  3. Resolve: the priority cascade. One candidate wins outright; among several
//     the first with both legs matched, then sender identical, then receiver
//     identical. Anything else is ambiguous and kept for manual review.
//  4. ValidatePair: per-field strategies (exact, exact after transform,
//     conditional rewrite, special case).
//  5. ColumnChecker: existence, type family, temporal/text conversion, size and
//     nullability rules over ColumnDescriptor pairs.
//  6. BuildReport: aggregation in original scan order.
//
// # Engine
//
// Engine binds one validated Config. Configuration errors are returned by
// NewEngine and are fatal; every per-record problem becomes a Finding instead.
// ReconcileAll and CheckColumns fan out over a bounded errgroup and write results
// by index, so output order never depends on scheduling.
//
// # Usage
//
//	engine, err := reconcile.NewEngine(cfg, logger)
//	if err != nil {
//	    return err // *ConfigurationError
//	}
//	records, err := engine.ReconcileAll(ctx, catalog)
//	columns, err := engine.CheckColumns(ctx, mappings, reconcile.NewSchemaCache(schema, 0))
//	report := reconcile.BuildReport(runID, "csv", started, records, columns)
package reconcile
