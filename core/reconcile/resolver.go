package reconcile

// Resolution is the outcome of the priority cascade.
type Resolution struct {
	// Match is the selected candidate, nil when none was selected.
	Match *MatchCandidate
	// Rule is the cascade branch that selected Match.
	Rule ResolutionRule
	// Status is matched, unmatched or ambiguous.
	Status MatchStatus
}

// cascade is the tie-break order for several candidates.
var cascade = []struct {
	rule ResolutionRule
	pick func(MatchCandidate) bool
}{
	{RuleBothMatched, func(c MatchCandidate) bool { return c.SenderMatched && c.ReceiverMatched }},
	{RuleSenderIdentical, func(c MatchCandidate) bool { return c.SenderIdentical }},
	{RuleReceiverIdentical, func(c MatchCandidate) bool { return c.ReceiverIdentical }},
}

// Resolve picks at most one counterpart.
//
// A single candidate is returned as is, labelled with the first cascade branch
// it satisfies or RuleSingle. With several candidates the first one in
// scan order wins, checking in turn: both legs matched, sender identical,
// receiver identical. If nothing qualifies the result is ambiguous.
func Resolve(candidates []MatchCandidate) Resolution {
	switch len(candidates) {
	case 0:
		return Resolution{Status: MatchStatusUnmatched}
	case 1:
		// Returned regardless of strength. The rule only labels it.
		c := candidates[0]
		rule := RuleSingle
		for _, step := range cascade {
			if step.pick(c) {
				rule = step.rule
				break
			}
		}
		return Resolution{Match: &c, Rule: rule, Status: MatchStatusMatched}
	}

	for _, step := range cascade {
		for i := range candidates {
			if step.pick(candidates[i]) {
				c := candidates[i]
				return Resolution{Match: &c, Rule: step.rule, Status: MatchStatusMatched}
			}
		}
	}
	return Resolution{Status: MatchStatusAmbiguous}
}
