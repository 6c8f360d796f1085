package reconcile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine runs interface reconciliation and column checks under one validated
// configuration. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg     Config
	table   FieldTable
	checker *ColumnChecker
	logger  *zap.Logger
}

// NewEngine validates cfg and builds an engine. A configuration error is returned
// before any record is touched.
func NewEngine(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg: cfg,
		table: FieldTable{
			Fields:       cfg.Fields,
			Rules:        cfg.Rules,
			SpecialCases: cfg.SpecialCases,
			Verbose:      cfg.Verbose,
		},
		checker: NewColumnChecker(cfg.Types, cfg.Verbose),
		logger:  logger,
	}, nil
}

// Config returns the validated configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Transform rewrites value with the configured rules.
func (e *Engine) Transform(value string) string {
	return Transform(value, e.cfg.Rules)
}

// IsBase reports whether rec needs a counterpart lookup: its sender or receiver
// carries a from-token and, when configured, its development type is selected.
func (e *Engine) IsBase(rec InterfaceRecord) bool {
	if !e.cfg.Rules.HasFromToken(rec.SenderSystem) && !e.cfg.Rules.HasFromToken(rec.ReceiverSystem) {
		return false
	}
	if len(e.cfg.Selection.DevelopmentTypes) == 0 {
		return true
	}
	dt := strings.TrimSpace(rec.DevelopmentType)
	for _, want := range e.cfg.Selection.DevelopmentTypes {
		if strings.EqualFold(dt, strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// SelectBase filters the catalog down to base records, keeping catalog order.
func (e *Engine) SelectBase(catalog []InterfaceRecord) []InterfaceRecord {
	var out []InterfaceRecord
	for _, rec := range catalog {
		if e.IsBase(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FindCandidates returns the candidates of base in catalog order.
func (e *Engine) FindCandidates(base InterfaceRecord, catalog []InterfaceRecord) []MatchCandidate {
	return FindCandidates(base, catalog, e.cfg.Rules)
}

// Validate compares a resolved pair with the configured field table.
func (e *Engine) Validate(base, matched InterfaceRecord) []Finding {
	return ValidatePair(base, matched, e.table)
}

// CompareColumns checks one mapping against already loaded descriptors.
func (e *Engine) CompareColumns(m ColumnMapping, send, recv *ColumnDescriptor) ComparisonResult {
	return e.checker.Compare(m, send, recv)
}

// reconcileRecord runs candidate discovery, resolution and validation for one base record.
func (e *Engine) reconcileRecord(base InterfaceRecord, idx *CandidateIndex) RecordResult {
	candidates := idx.Candidates(base, e.cfg.Rules)
	res := Resolve(candidates)

	result := RecordResult{
		Base:        base,
		Candidates:  candidates,
		MatchStatus: res.Status,
		Rule:        res.Rule,
		Findings:    []Finding{},
	}
	if result.Candidates == nil {
		result.Candidates = []MatchCandidate{}
	}

	switch res.Status {
	case MatchStatusMatched:
		result.Match = res.Match
		result.Findings = e.Validate(base, res.Match.Record)
	case MatchStatusUnmatched:
		result.Findings = append(result.Findings, Finding{
			Field:    "counterpart",
			Severity: SeverityError,
			Message:  fmt.Sprintf("no counterpart found for %q", strings.TrimSpace(base.InterfaceName)),
		})
	case MatchStatusAmbiguous:
		rows := make([]int, len(candidates))
		for i, c := range candidates {
			rows[i] = c.Record.RowIndex
		}
		amb := &AmbiguousMatchError{RowIndex: base.RowIndex, Candidates: rows}
		result.Error = amb.Error()
		result.Findings = append(result.Findings, Finding{
			Field:    "counterpart",
			Severity: SeverityError,
			Message:  amb.Error(),
		})
		e.logger.Warn("Ambiguous match retained for review",
			zap.Int("row", base.RowIndex),
			zap.String("interface", base.InterfaceName),
			zap.Ints("candidates", rows),
		)
	}

	result.Status = OverallStatus(result.Findings)
	return result
}

// ReconcileAll reconciles every base record of the catalog. Records are processed
// by a bounded worker pool, results keep the catalog order of their base records.
func (e *Engine) ReconcileAll(ctx context.Context, catalog []InterfaceRecord) ([]RecordResult, error) {
	bases := e.SelectBase(catalog)
	idx := NewCandidateIndex(catalog)

	e.logger.Info("Reconciliation started",
		zap.Int("catalog", len(catalog)),
		zap.Int("base_records", len(bases)),
		zap.Int("workers", e.cfg.Workers),
	)

	results := make([]RecordResult, len(bases))
	err := forEachOrdered(ctx, e.cfg.Workers, len(bases), func(i int) {
		results[i] = e.reconcileRecord(bases[i], idx)
		e.logger.Debug("Record reconciled",
			zap.Int("row", bases[i].RowIndex),
			zap.String("match", string(results[i].MatchStatus)),
			zap.String("status", string(results[i].Status)),
		)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Reconciliation finished", zap.Int("results", len(results)))
	return results, nil
}

// ReconcileOne reconciles the record with the given row index against the whole
// catalog, whether or not it would be selected as a base record.
func (e *Engine) ReconcileOne(ctx context.Context, catalog []InterfaceRecord, rowIndex int) (*RecordResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := NewCandidateIndex(catalog)
	base, ok := idx.Lookup(rowIndex)
	if !ok {
		return nil, &NotFoundError{Resource: "catalog row", Name: strconv.Itoa(rowIndex)}
	}
	result := e.reconcileRecord(base, idx)
	return &result, nil
}

// CheckColumns runs the column compatibility checker over every mapping. Schema
// metadata is fetched through cache. A table that cannot be loaded becomes an
// ERROR finding on the affected mappings only.
func (e *Engine) CheckColumns(ctx context.Context, mappings []ColumnMapping, cache *SchemaCache) ([]ComparisonResult, error) {
	e.logger.Info("Column check started", zap.Int("mappings", len(mappings)))

	results := make([]ComparisonResult, len(mappings))
	err := forEachOrdered(ctx, e.cfg.Workers, len(mappings), func(i int) {
		m := mappings[i]
		send, sendErr := e.lookupColumn(ctx, cache, m.Send)
		recv, recvErr := e.lookupColumn(ctx, cache, m.Recv)
		results[i] = e.checker.compare(m, send, recv, sendErr, recvErr)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Column check finished", zap.Int("results", len(results)))
	return results, nil
}

func (e *Engine) lookupColumn(ctx context.Context, cache *SchemaCache, ref ColumnRef) (*ColumnDescriptor, error) {
	if ref.Blank() {
		return nil, nil
	}
	cols, err := cache.Columns(ctx, ref.Owner, ref.Table)
	if err != nil {
		e.logger.Warn("Schema load failed",
			zap.String("owner", ref.Owner),
			zap.String("table", ref.Table),
			zap.Error(err),
		)
		return nil, err
	}
	if d, ok := cols[strings.ToUpper(strings.TrimSpace(ref.Column))]; ok {
		return &d, nil
	}
	return nil, nil
}

// forEachOrdered calls fn for 0..n-1 on at most workers goroutines. fn writes its
// own slot, so callers keep input order. Cancellation stops scheduling.
func forEachOrdered(ctx context.Context, workers, n int, fn func(i int)) error {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
