package reconcile

import (
	"fmt"
	"strings"
)

// Strategy names a field comparison strategy of the PairValidator.
type Strategy string

const (
	// StrategyExactAfterTransform requires transform(base) == matched.
	StrategyExactAfterTransform Strategy = "exact_after_transform"
	// StrategyExact requires trimmed values to be identical.
	StrategyExact Strategy = "exact"
	// StrategyConditionalRewrite rewrites only values carrying a from-token
	// at the start of a '.' or '_' separated segment.
	StrategyConditionalRewrite Strategy = "conditional_rewrite"
	// StrategySpecialCase accepts known business-name equivalences.
	StrategySpecialCase Strategy = "special_case"
)

func (s Strategy) valid() bool {
	switch s {
	case StrategyExactAfterTransform, StrategyExact, StrategyConditionalRewrite, StrategySpecialCase:
		return true
	default:
		return false
	}
}

// FieldRule binds one report label to a record field and a comparison strategy.
type FieldRule struct {
	// Label is the name shown in findings. Defaults to Field.
	Label string `mapstructure:"label" json:"label"`
	// Field is one of RecordFields.
	Field string `mapstructure:"field" json:"field"`
	// Strategy selects the comparison.
	Strategy Strategy `mapstructure:"strategy" json:"strategy"`
	// Severity raised on mismatch. Defaults to ERROR.
	Severity string `mapstructure:"severity" json:"severity"`
}

// EquivalencePair declares two business names as equal despite the rewrite rules.
type EquivalencePair struct {
	Base    string `mapstructure:"base" json:"base"`
	Matched string `mapstructure:"matched" json:"matched"`
}

// TypeFamilies groups column type names for compatibility checks.
type TypeFamilies struct {
	// Text lists character types that are interchangeable with each other.
	Text []string `mapstructure:"text" json:"text"`
	// Temporal lists date and time types.
	Temporal []string `mapstructure:"temporal" json:"temporal"`
}

// Selection is the base-record predicate.
type Selection struct {
	// DevelopmentTypes restricts base records to these development types when non-empty.
	DevelopmentTypes []string `mapstructure:"development_types" json:"development_types"`
}

// Config is the complete, explicit configuration of one Engine.
type Config struct {
	// Rules are applied in declared order.
	Rules RewriteRules `mapstructure:"rewrite_rules" json:"rewrite_rules"`

	// Fields is the field comparison table of the PairValidator.
	Fields []FieldRule `mapstructure:"fields" json:"fields"`

	// Types drives the ColumnCompatibilityChecker.
	Types TypeFamilies `mapstructure:"column_types" json:"column_types"`

	// SpecialCases is the closed equivalence list used by StrategySpecialCase.
	SpecialCases []EquivalencePair `mapstructure:"special_cases" json:"special_cases"`

	// Selection filters the catalog down to base records.
	Selection Selection `mapstructure:"selection" json:"selection"`

	// Verbose keeps OK findings in the output.
	Verbose bool `mapstructure:"verbose" json:"verbose"`

	// Workers bounds the per-record worker pool. Values below 1 run sequentially.
	Workers int `mapstructure:"workers" json:"workers"`
}

// DefaultTextTypes are the character types treated as one family.
var DefaultTextTypes = []string{
	"VARCHAR2", "VARCHAR", "NVARCHAR2", "NVARCHAR", "CHAR", "NCHAR",
	"CHARACTER", "CHARACTER VARYING", "TEXT",
}

// DefaultTemporalTypes are the date and time types.
var DefaultTemporalTypes = []string{
	"DATE", "DATETIME", "TIME", "TIMESTAMP",
	"TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITHOUT TIME ZONE", "TIMESTAMP WITH LOCAL TIME ZONE",
}

// DefaultFields is the field comparison table used when none is configured.
func DefaultFields() []FieldRule {
	return []FieldRule{
		{Label: "Sender System", Field: FieldSenderSystem, Strategy: StrategyExactAfterTransform},
		{Label: "Receiver System", Field: FieldReceiverSystem, Strategy: StrategyExactAfterTransform},
		{Label: "Interface Name", Field: FieldInterfaceName, Strategy: StrategyExact},
		{Label: "EMS Name", Field: FieldEMSName, Strategy: StrategyExact},
		{Label: "Schedule", Field: FieldSchedule, Strategy: StrategyExact},
		{Label: "Cycle Type", Field: FieldCycleType, Strategy: StrategyExact},
		{Label: "Cycle", Field: FieldCycle, Strategy: StrategyExact},
		{Label: "Source Table", Field: FieldSourceTable, Strategy: StrategyConditionalRewrite},
		{Label: "Destination Table", Field: FieldDestTable, Strategy: StrategyConditionalRewrite},
		{Label: "Task", Field: FieldTask, Strategy: StrategySpecialCase},
	}
}

// Validate checks the configuration and fills defaults. Any returned error is a
// *ConfigurationError and must abort the run before records are processed.
func (c *Config) Validate() error {
	if len(c.Rules) == 0 {
		return &ConfigurationError{Section: "rewrite_rules", Message: "at least one rule is required"}
	}
	for i, r := range c.Rules {
		if r.From == "" {
			return &ConfigurationError{Section: "rewrite_rules", Message: fmt.Sprintf("rule %d has an empty from token", i)}
		}
	}

	if len(c.Fields) == 0 {
		c.Fields = DefaultFields()
	}
	seen := make(map[string]struct{}, len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		if _, ok := (InterfaceRecord{}).FieldValue(f.Field); !ok {
			return &ConfigurationError{Section: "fields", Message: fmt.Sprintf("unknown field %q", f.Field)}
		}
		if !f.Strategy.valid() {
			return &ConfigurationError{Section: "fields", Message: fmt.Sprintf("unknown strategy %q for field %s", f.Strategy, f.Field)}
		}
		if f.Label == "" {
			f.Label = f.Field
		}
		if f.Severity == "" {
			f.Severity = string(SeverityError)
		}
		sev, ok := ParseSeverity(f.Severity)
		if !ok || sev == SeverityOK {
			return &ConfigurationError{Section: "fields", Message: fmt.Sprintf("invalid severity %q for field %s", f.Severity, f.Field)}
		}
		f.Severity = string(sev)
		if _, dup := seen[f.Label]; dup {
			return &ConfigurationError{Section: "fields", Message: fmt.Sprintf("duplicate label %q", f.Label)}
		}
		seen[f.Label] = struct{}{}
	}

	for i, p := range c.SpecialCases {
		if strings.TrimSpace(p.Base) == "" || strings.TrimSpace(p.Matched) == "" {
			return &ConfigurationError{Section: "special_cases", Message: fmt.Sprintf("entry %d needs both base and matched", i)}
		}
	}

	if len(c.Types.Text) == 0 {
		c.Types.Text = DefaultTextTypes
	}
	if len(c.Types.Temporal) == 0 {
		c.Types.Temporal = DefaultTemporalTypes
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}
