package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(row int, sm, rm, si, ri bool) MatchCandidate {
	return MatchCandidate{
		Record:            InterfaceRecord{RowIndex: row},
		SenderMatched:     sm,
		ReceiverMatched:   rm,
		SenderIdentical:   si,
		ReceiverIdentical: ri,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []MatchCandidate
		wantStatus MatchStatus
		wantRule   ResolutionRule
		wantRow    int
	}{
		{
			name:       "no candidates",
			wantStatus: MatchStatusUnmatched,
			wantRule:   RuleNone,
		},
		{
			name:       "single weak candidate is accepted",
			candidates: []MatchCandidate{cand(3, false, true, false, false)},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleSingle,
			wantRow:    3,
		},
		{
			name:       "single strong candidate is labelled",
			candidates: []MatchCandidate{cand(3, true, true, false, false)},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleBothMatched,
			wantRow:    3,
		},
		{
			name: "both legs matched wins over identical",
			candidates: []MatchCandidate{
				cand(1, true, false, false, true),
				cand(2, true, true, false, false),
			},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleBothMatched,
			wantRow:    2,
		},
		{
			name: "first both-matched in scan order",
			candidates: []MatchCandidate{
				cand(4, true, true, false, false),
				cand(5, true, true, false, false),
			},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleBothMatched,
			wantRow:    4,
		},
		{
			name: "sender identical before receiver identical",
			candidates: []MatchCandidate{
				cand(1, false, true, false, false),
				cand(2, false, true, false, true),
				cand(3, false, true, true, false),
			},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleSenderIdentical,
			wantRow:    3,
		},
		{
			name: "receiver identical",
			candidates: []MatchCandidate{
				cand(1, true, false, false, false),
				cand(2, true, false, false, true),
			},
			wantStatus: MatchStatusMatched,
			wantRule:   RuleReceiverIdentical,
			wantRow:    2,
		},
		{
			name: "ambiguous",
			candidates: []MatchCandidate{
				cand(1, true, false, false, false),
				cand(2, false, true, false, false),
			},
			wantStatus: MatchStatusAmbiguous,
			wantRule:   RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.candidates)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantRule, res.Rule)
			if tt.wantStatus == MatchStatusMatched {
				require.NotNil(t, res.Match)
				assert.Equal(t, tt.wantRow, res.Match.Record.RowIndex)
			} else {
				assert.Nil(t, res.Match)
			}
		})
	}
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	candidates := []MatchCandidate{cand(1, true, true, false, false), cand(2, false, true, false, false)}
	res := Resolve(candidates)
	require.NotNil(t, res.Match)

	res.Match.Record.RowIndex = 99
	assert.Equal(t, 1, candidates[0].Record.RowIndex)
}
