package reconcile

import "strings"

// FindCandidates scans the catalog for records that may be the counterpart of
// base. The base record itself is never returned and catalog order is kept.
func FindCandidates(base InterfaceRecord, catalog []InterfaceRecord, rules RewriteRules) []MatchCandidate {
	name := strings.TrimSpace(base.InterfaceName)
	var out []MatchCandidate
	for i := range catalog {
		if c, ok := evaluate(base, name, catalog[i], rules); ok {
			out = append(out, c)
		}
	}
	return out
}

// evaluate applies the coarse filter and the transformed-equality test to one record.
func evaluate(base InterfaceRecord, baseName string, rec InterfaceRecord, rules RewriteRules) (MatchCandidate, bool) {
	if rec.RowIndex == base.RowIndex {
		return MatchCandidate{}, false
	}
	if strings.TrimSpace(rec.InterfaceName) != baseName {
		return MatchCandidate{}, false
	}

	c := MatchCandidate{
		Record:            rec,
		SenderMatched:     legMatched(base.SenderSystem, rec.SenderSystem, rules),
		ReceiverMatched:   legMatched(base.ReceiverSystem, rec.ReceiverSystem, rules),
		SenderIdentical:   identical(base.SenderSystem, rec.SenderSystem),
		ReceiverIdentical: identical(base.ReceiverSystem, rec.ReceiverSystem),
	}
	if !c.SenderMatched && !c.ReceiverMatched {
		return MatchCandidate{}, false
	}
	return c, true
}

// legMatched tries each from-token present in the base value on its own and
// stops at the first rule whose rewrite equals the candidate value.
func legMatched(baseValue, candValue string, rules RewriteRules) bool {
	for _, r := range rules.Present(baseValue) {
		if candValue == Transform(baseValue, RewriteRules{r}) {
			return true
		}
	}
	return false
}

// identical is exact equality. Two blank values are not considered identical.
func identical(a, b string) bool {
	return a != "" && a == b
}

// CandidateIndex groups catalog positions by trimmed interface name so repeated
// lookups do not rescan the whole catalog. It returns the same candidates, in the
// same order, as FindCandidates.
type CandidateIndex struct {
	catalog []InterfaceRecord
	byName  map[string][]int
}

// NewCandidateIndex builds an index over a read-only catalog snapshot.
func NewCandidateIndex(catalog []InterfaceRecord) *CandidateIndex {
	idx := &CandidateIndex{
		catalog: catalog,
		byName:  make(map[string][]int),
	}
	for i, rec := range catalog {
		key := strings.TrimSpace(rec.InterfaceName)
		idx.byName[key] = append(idx.byName[key], i)
	}
	return idx
}

// Candidates returns the candidates of base using the index.
func (idx *CandidateIndex) Candidates(base InterfaceRecord, rules RewriteRules) []MatchCandidate {
	name := strings.TrimSpace(base.InterfaceName)
	var out []MatchCandidate
	for _, pos := range idx.byName[name] {
		if c, ok := evaluate(base, name, idx.catalog[pos], rules); ok {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of indexed records.
func (idx *CandidateIndex) Len() int {
	return len(idx.catalog)
}

// Lookup returns the record with the given row index.
func (idx *CandidateIndex) Lookup(rowIndex int) (InterfaceRecord, bool) {
	for _, rec := range idx.catalog {
		if rec.RowIndex == rowIndex {
			return rec, true
		}
	}
	return InterfaceRecord{}, false
}
