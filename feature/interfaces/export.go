package interfaces

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage"

	"github.com/goccy/go-json"
)

// EncodeReport renders the report as indented JSON.
func EncodeReport(r *reconcile.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// ReportKey returns the object key of a run's report.
func ReportKey(prefix, runID string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + runID + ".json"
}

// UploadReport stores the report JSON under prefix and returns the key.
func UploadReport(ctx context.Context, client storage.Client, bucket, prefix string, r *reconcile.Report) (string, error) {
	data, err := EncodeReport(r)
	if err != nil {
		return "", err
	}
	key := ReportKey(prefix, r.RunID)
	if err := storage.WriteObject(ctx, client, bucket, key, data, "application/json"); err != nil {
		return "", err
	}
	return key, nil
}

// WriteReportFile writes the report JSON to a local file.
func WriteReportFile(path string, r *reconcile.Report) error {
	data, err := EncodeReport(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// WriteFindingsFile writes the findings CSV to a local file. A failed close is
// reported, since it can hide an unflushed write.
func WriteFindingsFile(path string, r *reconcile.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return WriteFindingsCSV(f, r)
}

// findingsHeader is the column order of WriteFindingsCSV.
var findingsHeader = []string{
	"kind", "row", "interface_name", "sender_system", "receiver_system",
	"match_row", "match_status", "rule", "field", "severity", "message",
}

// WriteFindingsCSV flattens the report into one line per finding, for
// spreadsheet review. Records and mappings without findings get one line
// carrying their overall status.
func WriteFindingsCSV(w io.Writer, r *reconcile.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(findingsHeader); err != nil {
		return err
	}

	for _, rec := range r.Records {
		matchRow := ""
		if rec.Match != nil {
			matchRow = strconv.Itoa(rec.Match.Record.RowIndex)
		}
		prefix := []string{
			"record", strconv.Itoa(rec.Base.RowIndex), rec.Base.InterfaceName,
			rec.Base.SenderSystem, rec.Base.ReceiverSystem,
			matchRow, string(rec.MatchStatus), string(rec.Rule),
		}
		if err := writeFindings(cw, prefix, rec.Findings, rec.Status); err != nil {
			return err
		}
	}

	for _, col := range r.Columns {
		prefix := []string{
			"column", strconv.Itoa(col.Mapping.RowIndex), "",
			qualifiedRef(col.Mapping.Send), qualifiedRef(col.Mapping.Recv),
			"", "", "",
		}
		if err := writeFindings(cw, prefix, col.Findings, col.Status); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeFindings(cw *csv.Writer, prefix []string, findings []reconcile.Finding, status reconcile.Severity) error {
	if len(findings) == 0 {
		return cw.Write(append(append([]string{}, prefix...), "", string(status), ""))
	}
	for _, f := range findings {
		line := append(append([]string{}, prefix...), f.Field, string(f.Severity), f.Message)
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func qualifiedRef(ref reconcile.ColumnRef) string {
	var parts []string
	for _, p := range []string{ref.Owner, ref.Table, ref.Column} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
