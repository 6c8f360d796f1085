package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTable(strategy Strategy, field string) FieldTable {
	return FieldTable{
		Fields: []FieldRule{{Label: field, Field: field, Strategy: strategy, Severity: "ERROR"}},
		Rules:  testRules(),
		SpecialCases: []EquivalencePair{
			{Base: "LY_ORDER_SYNC", Matched: "ORDER_SYNC_V2"},
		},
	}
}

func TestValidatePair_Strategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		field    string
		base     string
		matched  string
		wantOK   bool
	}{
		{name: "exact after transform ok", strategy: StrategyExactAfterTransform, field: FieldSenderSystem, base: "LYMES", matched: "LHMES", wantOK: true},
		{name: "exact after transform mismatch", strategy: StrategyExactAfterTransform, field: FieldSenderSystem, base: "LYMES", matched: "LYMES"},
		{name: "exact after transform untrimmed", strategy: StrategyExactAfterTransform, field: FieldSenderSystem, base: "LYMES", matched: "LHMES "},
		{name: "exact ok", strategy: StrategyExact, field: FieldSchedule, base: "0 * * * *", matched: "0 * * * *", wantOK: true},
		{name: "exact trims", strategy: StrategyExact, field: FieldSchedule, base: " DAILY", matched: "DAILY ", wantOK: true},
		{name: "exact mismatch", strategy: StrategyExact, field: FieldSchedule, base: "DAILY", matched: "HOURLY"},
		{name: "conditional rewrites segment", strategy: StrategyConditionalRewrite, field: FieldSourceTable, base: "TB_LY_ORDER", matched: "TB_LH_ORDER", wantOK: true},
		{name: "conditional rewrite mismatch", strategy: StrategyConditionalRewrite, field: FieldSourceTable, base: "LY_ORDER", matched: "LY_ORDER"},
		{name: "conditional exact without segment", strategy: StrategyConditionalRewrite, field: FieldSourceTable, base: "TB_ORDERLY", matched: "TB_ORDERLY", wantOK: true},
		{name: "special case identical", strategy: StrategySpecialCase, field: FieldTask, base: "SYNC", matched: "SYNC", wantOK: true},
		{name: "special case rewrite", strategy: StrategySpecialCase, field: FieldTask, base: "LY_SYNC", matched: "LH_SYNC", wantOK: true},
		{name: "special case listed", strategy: StrategySpecialCase, field: FieldTask, base: "LY_ORDER_SYNC", matched: "ORDER_SYNC_V2", wantOK: true},
		{name: "special case listed one way only", strategy: StrategySpecialCase, field: FieldTask, base: "ORDER_SYNC_V2", matched: "LY_ORDER_SYNC"},
		{name: "special case unknown", strategy: StrategySpecialCase, field: FieldTask, base: "SYNC", matched: "PUSH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var base, matched InterfaceRecord
			require.True(t, base.SetField(tt.field, tt.base))
			require.True(t, matched.SetField(tt.field, tt.matched))

			findings := ValidatePair(base, matched, fieldTable(tt.strategy, tt.field))
			if tt.wantOK {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, SeverityError, findings[0].Severity)
			assert.Equal(t, tt.field, findings[0].Field)
		})
	}
}

func TestValidatePair_Messages(t *testing.T) {
	base := InterfaceRecord{SenderSystem: "LYMES", Schedule: "DAILY"}
	matched := InterfaceRecord{SenderSystem: "XXMES", Schedule: "HOURLY"}
	table := FieldTable{
		Fields: []FieldRule{
			{Label: "Sender", Field: FieldSenderSystem, Strategy: StrategyExactAfterTransform, Severity: "ERROR"},
			{Label: "Schedule", Field: FieldSchedule, Strategy: StrategyExact, Severity: "WARNING"},
		},
		Rules: testRules(),
	}

	findings := ValidatePair(base, matched, table)
	require.Len(t, findings, 2)
	assert.Equal(t, `expected "LHMES" (rewritten from "LYMES"), got "XXMES"`, findings[0].Message)
	assert.Equal(t, SeverityWarning, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "DAILY")
	assert.Contains(t, findings[1].Message, "HOURLY")
}

func TestValidatePair_Verbose(t *testing.T) {
	table := fieldTable(StrategyExact, FieldCycle)
	table.Verbose = true

	findings := ValidatePair(InterfaceRecord{Cycle: "1"}, InterfaceRecord{Cycle: "1"}, table)
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityOK, findings[0].Severity)
}

func TestValidatePair_OneFindingPerField(t *testing.T) {
	table := FieldTable{Fields: DefaultFields(), Rules: testRules(), Verbose: true}
	base := rec(0, "LYMES", "LZWMS", "IF_001")
	matched := rec(1, "LHMES", "VOWMS", "IF_001")

	findings := ValidatePair(base, matched, table)
	assert.Len(t, findings, len(table.Fields))
	assert.Equal(t, SeverityOK, OverallStatus(findings))
}
