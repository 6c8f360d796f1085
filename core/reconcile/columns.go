package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	sideSend = "send"
	sideRecv = "recv"
)

// typeSet is a normalised lookup built from TypeFamilies.
type typeSet map[string]struct{}

func newTypeSet(names []string) typeSet {
	s := make(typeSet, len(names))
	for _, n := range names {
		s[NormalizeType(n)] = struct{}{}
	}
	return s
}

func (s typeSet) has(name string) bool {
	_, ok := s[NormalizeType(name)]
	return ok
}

// NormalizeType upper-cases a type name and drops any length or precision suffix,
// so "varchar2(50)" and "VARCHAR2" compare equal.
func NormalizeType(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return strings.ToUpper(name)
}

// ColumnChecker compares column descriptors under one set of type families.
type ColumnChecker struct {
	text     typeSet
	temporal typeSet
	verbose  bool
}

// NewColumnChecker builds a checker. Empty families fall back to the defaults.
func NewColumnChecker(types TypeFamilies, verbose bool) *ColumnChecker {
	text, temporal := types.Text, types.Temporal
	if len(text) == 0 {
		text = DefaultTextTypes
	}
	if len(temporal) == 0 {
		temporal = DefaultTemporalTypes
	}
	return &ColumnChecker{
		text:     newTypeSet(text),
		temporal: newTypeSet(temporal),
		verbose:  verbose,
	}
}

// Compare checks one mapping. A nil descriptor for a configured column means the
// column is absent from the loaded schema.
func (cc *ColumnChecker) Compare(m ColumnMapping, send, recv *ColumnDescriptor) ComparisonResult {
	return cc.compare(m, send, recv, nil, nil)
}

// compare is Compare with the schema load error of each side. A side whose table
// could not be loaded gets a single ERROR and skips the remaining rules.
func (cc *ColumnChecker) compare(m ColumnMapping, send, recv *ColumnDescriptor, sendErr, recvErr error) ComparisonResult {
	res := ComparisonResult{
		Mapping:        m,
		SendColumn:     strings.TrimSpace(m.Send.Column),
		RecvColumn:     strings.TrimSpace(m.Recv.Column),
		SendDescriptor: send,
		RecvDescriptor: recv,
		Findings:       []Finding{},
	}

	if m.Send.Blank() && m.Recv.Blank() {
		res.Status = SeverityOK
		return res
	}

	sendOK := cc.existence(&res, sideSend, m.Send, send, sendErr)
	recvOK := cc.existence(&res, sideRecv, m.Recv, recv, recvErr)
	if sendOK && recvOK {
		cc.typeRules(&res, send, recv)
		cc.sizeRule(&res, send, recv)
		cc.nullRule(&res, send, recv)
	}

	if cc.verbose && len(res.Findings) == 0 {
		res.Findings = append(res.Findings, Finding{
			Field:    res.SendColumn + " -> " + res.RecvColumn,
			Severity: SeverityOK,
			Message:  "compatible",
		})
	}
	res.Status = OverallStatus(res.Findings)
	return res
}

// existence records missing or unconfigured columns and reports whether the side
// can take part in the remaining rules.
func (cc *ColumnChecker) existence(res *ComparisonResult, side string, ref ColumnRef, desc *ColumnDescriptor, loadErr error) bool {
	if ref.Blank() {
		res.Findings = append(res.Findings, Finding{
			Field:    side,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s column not configured", side),
		})
		return false
	}
	if loadErr != nil {
		msg := fmt.Sprintf("%s schema unavailable: %v", side, loadErr)
		if errors.Is(loadErr, ErrNotFound) {
			msg = fmt.Sprintf("%s table not found (%s)", side, qualified(ColumnRef{Owner: ref.Owner, Table: ref.Table}))
		}
		res.Findings = append(res.Findings, Finding{Field: side, Severity: SeverityError, Message: msg})
		return false
	}
	if desc == nil {
		nf := &NotFoundError{Resource: side + " column", Name: qualified(ref)}
		res.Findings = append(res.Findings, Finding{
			Field:    side,
			Severity: SeverityError,
			Message:  nf.Error(),
		})
		return false
	}
	return true
}

func (cc *ColumnChecker) typeRules(res *ComparisonResult, send, recv *ColumnDescriptor) {
	st, rt := NormalizeType(send.DataType), NormalizeType(recv.DataType)
	sendText, recvText := cc.text.has(st), cc.text.has(rt)

	if st != rt && !(sendText && recvText) {
		res.Findings = append(res.Findings, Finding{
			Field:    "type",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("type mismatch: send(%s) vs recv(%s)", st, rt),
		})
	}

	sendTemporal, recvTemporal := cc.temporal.has(st), cc.temporal.has(rt)
	switch {
	case sendTemporal && !recvTemporal && recvText:
		res.Findings = append(res.Findings, Finding{
			Field:    "type",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("date to text conversion: send(%s) -> recv(%s), verify the output format", st, rt),
		})
	case recvTemporal && !sendTemporal && sendText:
		res.Findings = append(res.Findings, Finding{
			Field:    "type",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("text to date conversion: send(%s) -> recv(%s), validate the input format", st, rt),
		})
	}
}

func (cc *ColumnChecker) sizeRule(res *ComparisonResult, send, recv *ColumnDescriptor) {
	if !cc.text.has(send.DataType) || !cc.text.has(recv.DataType) {
		return
	}
	if cc.temporal.has(send.DataType) || cc.temporal.has(recv.DataType) {
		return
	}

	// Equal sizes cannot overflow, whatever their notation. This also covers both blank.
	ss, rs := strings.TrimSpace(send.Size), strings.TrimSpace(recv.Size)
	if ss == rs {
		return
	}

	sendSize, err := parseSize(sideSend, ss)
	if err == nil {
		var recvSize int
		recvSize, err = parseSize(sideRecv, rs)
		if err == nil {
			if sendSize > recvSize {
				res.Findings = append(res.Findings, Finding{
					Field:    "size",
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("size mismatch: send(%d) > recv(%d)", sendSize, recvSize),
				})
			}
			return
		}
	}
	res.Findings = append(res.Findings, Finding{
		Field:    "size",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("size metadata unparseable: %v", err),
	})
}

func parseSize(side, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Field: side + " size", Value: value, Err: err}
	}
	return n, nil
}

func (cc *ColumnChecker) nullRule(res *ComparisonResult, send, recv *ColumnDescriptor) {
	if isNullable(send.Nullable) && strings.EqualFold(strings.TrimSpace(recv.Nullable), "N") {
		res.Findings = append(res.Findings, Finding{
			Field:    "nullable",
			Severity: SeverityWarning,
			Message:  "possible NOT NULL violation: send column is nullable, recv column is not",
		})
	}
}

func isNullable(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "Y")
}

func qualified(ref ColumnRef) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{ref.Owner, ref.Table, ref.Column} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
