package reconcile

import (
	"fmt"
	"strings"
)

// FieldTable carries everything the PairValidator needs.
type FieldTable struct {
	Fields       []FieldRule
	Rules        RewriteRules
	SpecialCases []EquivalencePair
	// Verbose keeps OK findings.
	Verbose bool
}

// ValidatePair compares a resolved base/counterpart pair field by field.
// Every configured field yields at most one finding.
func ValidatePair(base, matched InterfaceRecord, table FieldTable) []Finding {
	findings := make([]Finding, 0, len(table.Fields))
	for _, f := range table.Fields {
		bv, _ := base.FieldValue(f.Field)
		mv, _ := matched.FieldValue(f.Field)

		msg, ok := compareField(f.Strategy, bv, mv, table)
		if ok {
			if table.Verbose {
				findings = append(findings, Finding{Field: f.Label, Severity: SeverityOK, Message: msg})
			}
			continue
		}

		sev, valid := ParseSeverity(f.Severity)
		if !valid || sev == SeverityOK {
			sev = SeverityError
		}
		findings = append(findings, Finding{Field: f.Label, Severity: sev, Message: msg})
	}
	return findings
}

func compareField(strategy Strategy, bv, mv string, table FieldTable) (string, bool) {
	switch strategy {
	case StrategyExactAfterTransform:
		return exactAfterTransform(bv, mv, table.Rules)
	case StrategyConditionalRewrite:
		if table.Rules.StartsSegment(bv) {
			return exactAfterTransform(bv, mv, table.Rules)
		}
		return exactString(bv, mv)
	case StrategySpecialCase:
		return specialCase(bv, mv, table)
	default:
		return exactString(bv, mv)
	}
}

func exactAfterTransform(bv, mv string, rules RewriteRules) (string, bool) {
	want := Transform(bv, rules)
	if want == mv {
		return fmt.Sprintf("%q rewrites to %q", bv, mv), true
	}
	return fmt.Sprintf("expected %q (rewritten from %q), got %q", want, bv, mv), false
}

func exactString(bv, mv string) (string, bool) {
	b, m := strings.TrimSpace(bv), strings.TrimSpace(mv)
	if b == m {
		return fmt.Sprintf("identical value %q", b), true
	}
	return fmt.Sprintf("values differ: base %q vs matched %q", b, m), false
}

func specialCase(bv, mv string, table FieldTable) (string, bool) {
	b, m := strings.TrimSpace(bv), strings.TrimSpace(mv)
	if b == m {
		return fmt.Sprintf("identical value %q", b), true
	}
	if Transform(b, table.Rules) == m {
		return fmt.Sprintf("%q rewrites to %q", b, m), true
	}
	for _, p := range table.SpecialCases {
		if strings.TrimSpace(p.Base) == b && strings.TrimSpace(p.Matched) == m {
			return fmt.Sprintf("known equivalence %q = %q", b, m), true
		}
	}
	return fmt.Sprintf("no known equivalence: base %q vs matched %q", b, m), false
}
