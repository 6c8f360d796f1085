package sources

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"interface-reconciler/core/config"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage"
)

// Opener returns a fresh CSV stream. The caller closes it.
type Opener func(ctx context.Context) (io.ReadCloser, error)

// FileOpener reads a local file.
func FileOpener(path string) Opener {
	return func(ctx context.Context) (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return f, nil
	}
}

// ObjectOpener reads an object from the storage bucket.
func ObjectOpener(client storage.Client, bucket, key string) Opener {
	return func(ctx context.Context) (io.ReadCloser, error) {
		data, err := storage.ReadObject(ctx, client, bucket, key)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

// requiredCatalogFields must have a header column in every catalog.
var requiredCatalogFields = []string{
	reconcile.FieldSenderSystem, reconcile.FieldReceiverSystem, reconcile.FieldInterfaceName,
}

// requiredMappingFields must have a header column in every mapping table.
var requiredMappingFields = []string{config.MappingSendColumn, config.MappingRecvColumn}

// CSVCatalog reads the interface catalog from a CSV with a header row. Row
// indexes are zero-based data row numbers, blank lines keep their number.
type CSVCatalog struct {
	open    Opener
	columns map[string]string
}

// NewCSVCatalog creates a catalog source. columns maps record fields to headers.
func NewCSVCatalog(open Opener, columns map[string]string) *CSVCatalog {
	return &CSVCatalog{open: open, columns: withDefaults(columns, reconcile.RecordFields)}
}

// Name returns the source kind.
func (c *CSVCatalog) Name() string {
	return config.SourceCSV
}

// LoadCatalog reads every record in file order.
func (c *CSVCatalog) LoadCatalog(ctx context.Context) ([]reconcile.InterfaceRecord, error) {
	header, rows, err := readCSV(ctx, c.open)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex("catalog_columns", header, c.columns, requiredCatalogFields)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.InterfaceRecord, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		rec := reconcile.InterfaceRecord{RowIndex: i}
		for field, col := range idx {
			rec.SetField(field, cell(row, col))
		}
		records = append(records, rec)
	}
	return records, nil
}

// CSVMappings reads the column mapping table from a CSV with a header row.
type CSVMappings struct {
	open    Opener
	columns map[string]string
}

// NewCSVMappings creates a mapping source. columns maps mapping fields to headers.
func NewCSVMappings(open Opener, columns map[string]string) *CSVMappings {
	return &CSVMappings{open: open, columns: withDefaults(columns, config.MappingFields)}
}

// LoadMappings reads every mapping in file order.
func (m *CSVMappings) LoadMappings(ctx context.Context) ([]reconcile.ColumnMapping, error) {
	header, rows, err := readCSV(ctx, m.open)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex("mapping_columns", header, m.columns, requiredMappingFields)
	if err != nil {
		return nil, err
	}

	mappings := make([]reconcile.ColumnMapping, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		get := func(field string) string {
			col, ok := idx[field]
			if !ok {
				return ""
			}
			return strings.TrimSpace(cell(row, col))
		}
		mappings = append(mappings, buildMapping(i, get))
	}
	return mappings, nil
}

func buildMapping(row int, get func(string) string) reconcile.ColumnMapping {
	return reconcile.ColumnMapping{
		RowIndex: row,
		Send: reconcile.ColumnRef{
			Owner:  get(config.MappingSendOwner),
			Table:  get(config.MappingSendTable),
			Column: get(config.MappingSendColumn),
		},
		Recv: reconcile.ColumnRef{
			Owner:  get(config.MappingRecvOwner),
			Table:  get(config.MappingRecvTable),
			Column: get(config.MappingRecvColumn),
		},
	}
}

func readCSV(ctx context.Context, open Opener) ([]string, [][]string, error) {
	rc, err := open(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, &reconcile.ParseError{Field: "csv", Value: "", Err: err}
	}
	if len(all) == 0 {
		return nil, nil, &reconcile.ParseError{Field: "csv header", Value: "", Err: io.EOF}
	}
	return all[0], all[1:], nil
}

// headerIndex resolves configured header names, case and space insensitive.
func headerIndex(section string, header []string, columns map[string]string, required []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		key := normalizeHeader(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	idx := make(map[string]int, len(columns))
	for field, col := range columns {
		if i, ok := pos[normalizeHeader(col)]; ok {
			idx[field] = i
		}
	}
	for _, field := range required {
		if _, ok := idx[field]; !ok {
			return nil, &reconcile.ConfigurationError{
				Section: section,
				Message: fmt.Sprintf("column %q for %s not found", columns[field], field),
			}
		}
	}
	return idx, nil
}

func normalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// withDefaults maps every field to itself unless configured otherwise.
func withDefaults(columns map[string]string, fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = f
		if col, ok := columns[f]; ok && strings.TrimSpace(col) != "" {
			out[f] = col
		}
	}
	return out
}
