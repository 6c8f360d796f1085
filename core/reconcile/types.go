package reconcile

import "strings"

// Severity is the outcome level of a single finding.
type Severity string

const (
	// SeverityOK marks a field or column that passed every rule.
	SeverityOK Severity = "OK"
	// SeverityWarning marks a compatibility risk that needs a human look.
	SeverityWarning Severity = "WARNING"
	// SeverityError marks a definite mismatch.
	SeverityError Severity = "ERROR"
)

// rank orders severities so the worst one can be picked.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ParseSeverity converts a configured severity name. Unknown names return false.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToUpper(strings.TrimSpace(s))) {
	case SeverityOK:
		return SeverityOK, true
	case SeverityWarning:
		return SeverityWarning, true
	case SeverityError:
		return SeverityError, true
	default:
		return "", false
	}
}

// InterfaceRecord is one row of the interface catalog.
// Records are created by a CatalogSource and never modified by the engine.
type InterfaceRecord struct {
	// RowIndex is the stable, unique position of the record inside its catalog.
	RowIndex int `json:"row_index"`

	SenderSystem    string `json:"sender_system"`
	ReceiverSystem  string `json:"receiver_system"`
	InterfaceName   string `json:"interface_name"`
	SenderCorp      string `json:"sender_corp"`
	ReceiverCorp    string `json:"receiver_corp"`
	Package         string `json:"package"`
	Task            string `json:"task"`
	EMSName         string `json:"ems_name"`
	GroupID         string `json:"group_id"`
	EventID         string `json:"event_id"`
	SourceTable     string `json:"source_table"`
	DestTable       string `json:"dest_table"`
	Routing         string `json:"routing"`
	Schedule        string `json:"schedule"`
	CycleType       string `json:"cycle_type"`
	Cycle           string `json:"cycle"`
	DevelopmentType string `json:"development_type"`
}

// Field names accepted by FieldValue and by the field comparison table.
const (
	FieldSenderSystem    = "sender_system"
	FieldReceiverSystem  = "receiver_system"
	FieldInterfaceName   = "interface_name"
	FieldSenderCorp      = "sender_corp"
	FieldReceiverCorp    = "receiver_corp"
	FieldPackage         = "package"
	FieldTask            = "task"
	FieldEMSName         = "ems_name"
	FieldGroupID         = "group_id"
	FieldEventID         = "event_id"
	FieldSourceTable     = "source_table"
	FieldDestTable       = "dest_table"
	FieldRouting         = "routing"
	FieldSchedule        = "schedule"
	FieldCycleType       = "cycle_type"
	FieldCycle           = "cycle"
	FieldDevelopmentType = "development_type"
)

// RecordFields lists every addressable field of an InterfaceRecord.
var RecordFields = []string{
	FieldSenderSystem, FieldReceiverSystem, FieldInterfaceName, FieldSenderCorp,
	FieldReceiverCorp, FieldPackage, FieldTask, FieldEMSName, FieldGroupID,
	FieldEventID, FieldSourceTable, FieldDestTable, FieldRouting, FieldSchedule,
	FieldCycleType, FieldCycle, FieldDevelopmentType,
}

// FieldValue returns the value of the named field and whether the name is known.
func (r InterfaceRecord) FieldValue(field string) (string, bool) {
	if p := r.fieldPtr(field); p != nil {
		return *p, true
	}
	return "", false
}

// SetField assigns the named field. It reports false for unknown names.
func (r *InterfaceRecord) SetField(field, value string) bool {
	if p := r.fieldPtr(field); p != nil {
		*p = value
		return true
	}
	return false
}

func (r *InterfaceRecord) fieldPtr(field string) *string {
	switch field {
	case FieldSenderSystem:
		return &r.SenderSystem
	case FieldReceiverSystem:
		return &r.ReceiverSystem
	case FieldInterfaceName:
		return &r.InterfaceName
	case FieldSenderCorp:
		return &r.SenderCorp
	case FieldReceiverCorp:
		return &r.ReceiverCorp
	case FieldPackage:
		return &r.Package
	case FieldTask:
		return &r.Task
	case FieldEMSName:
		return &r.EMSName
	case FieldGroupID:
		return &r.GroupID
	case FieldEventID:
		return &r.EventID
	case FieldSourceTable:
		return &r.SourceTable
	case FieldDestTable:
		return &r.DestTable
	case FieldRouting:
		return &r.Routing
	case FieldSchedule:
		return &r.Schedule
	case FieldCycleType:
		return &r.CycleType
	case FieldCycle:
		return &r.Cycle
	case FieldDevelopmentType:
		return &r.DevelopmentType
	default:
		return nil
	}
}

// MatchCandidate is a catalog record that may be the counterpart of a base record.
// The flags are always relative to the base record used for the scan.
type MatchCandidate struct {
	Record InterfaceRecord `json:"record"`

	// SenderMatched is true when the candidate sender equals a rewrite of the base sender.
	SenderMatched bool `json:"sender_matched"`
	// ReceiverMatched is true when the candidate receiver equals a rewrite of the base receiver.
	ReceiverMatched bool `json:"receiver_matched"`
	// SenderIdentical is exact, untransformed sender equality.
	SenderIdentical bool `json:"sender_identical"`
	// ReceiverIdentical is exact, untransformed receiver equality.
	ReceiverIdentical bool `json:"receiver_identical"`
}

// Finding is one unit of validation output.
type Finding struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// OverallStatus returns the worst severity present, or OK for no findings.
func OverallStatus(findings []Finding) Severity {
	status := SeverityOK
	for _, f := range findings {
		if f.Severity.rank() > status.rank() {
			status = f.Severity
		}
	}
	return status
}

// MatchStatus describes how a base record's counterpart lookup ended.
type MatchStatus string

const (
	// MatchStatusMatched means exactly one counterpart was resolved.
	MatchStatusMatched MatchStatus = "matched"
	// MatchStatusUnmatched means no candidate was found.
	MatchStatusUnmatched MatchStatus = "unmatched"
	// MatchStatusAmbiguous means several candidates exist and none won the cascade.
	MatchStatusAmbiguous MatchStatus = "ambiguous"
)

// ResolutionRule names the branch of the priority cascade that picked a candidate.
type ResolutionRule string

const (
	RuleNone              ResolutionRule = ""
	RuleSingle            ResolutionRule = "single"
	RuleBothMatched       ResolutionRule = "both_matched"
	RuleSenderIdentical   ResolutionRule = "sender_identical"
	RuleReceiverIdentical ResolutionRule = "receiver_identical"
)

// RecordResult is the reconciliation outcome for one base record.
type RecordResult struct {
	// Base is the record that needed a counterpart.
	Base InterfaceRecord `json:"base"`

	// Match is the resolved counterpart, nil when unmatched or ambiguous.
	Match *MatchCandidate `json:"match,omitempty"`

	// Candidates holds every candidate found. For ambiguous results these are
	// retained for manual review.
	Candidates []MatchCandidate `json:"candidates"`

	MatchStatus MatchStatus    `json:"match_status"`
	Rule        ResolutionRule `json:"rule,omitempty"`

	// Findings are the field validation results for the resolved pair.
	Findings []Finding `json:"findings"`

	// Status aggregates Findings, an unresolved lookup is reported as ERROR.
	Status Severity `json:"status"`

	// Error carries the unresolved-match explanation, if any.
	Error string `json:"error,omitempty"`
}

// ColumnDescriptor is the schema metadata of one database column.
type ColumnDescriptor struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	// Size is kept as text because catalog metadata is not always numeric.
	Size string `json:"size"`
	// Nullable is "Y" or "N".
	Nullable string `json:"nullable"`
}

// ColumnRef addresses one column of one table.
type ColumnRef struct {
	Owner  string `json:"owner"`
	Table  string `json:"table"`
	Column string `json:"column"`
}

// Blank reports whether no column name is configured.
func (c ColumnRef) Blank() bool {
	return strings.TrimSpace(c.Column) == ""
}

// ColumnMapping pairs a sending column with the receiving column it feeds.
type ColumnMapping struct {
	RowIndex int       `json:"row_index"`
	Send     ColumnRef `json:"send"`
	Recv     ColumnRef `json:"recv"`
}

// ComparisonResult is the column compatibility outcome for one mapping.
type ComparisonResult struct {
	Mapping        ColumnMapping     `json:"mapping"`
	SendColumn     string            `json:"send_column"`
	RecvColumn     string            `json:"recv_column"`
	SendDescriptor *ColumnDescriptor `json:"send_descriptor,omitempty"`
	RecvDescriptor *ColumnDescriptor `json:"recv_descriptor,omitempty"`
	Findings       []Finding         `json:"findings"`
	Status         Severity          `json:"status"`
}
