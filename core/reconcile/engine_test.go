package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockSchema is a SchemaSource backed by testify/mock.
type mockSchema struct {
	mock.Mock
}

func (m *mockSchema) LoadColumns(ctx context.Context, owner, table string) (map[string]ColumnDescriptor, error) {
	args := m.Called(ctx, owner, table)
	cols, _ := args.Get(0).(map[string]ColumnDescriptor)
	return cols, args.Error(1)
}

func testEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := Config{Rules: testRules()}
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := NewEngine(cfg, zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestNewEngine_ConfigurationError(t *testing.T) {
	_, err := NewEngine(Config{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "rewrite_rules", cfgErr.Section)
}

func TestEngine_IsBase(t *testing.T) {
	e := testEngine(t, nil)

	assert.True(t, e.IsBase(rec(0, "LYMES", "ERP", "IF")))
	assert.True(t, e.IsBase(rec(0, "ERP", "LZWMS", "IF")))
	assert.False(t, e.IsBase(rec(0, "LHMES", "VOWMS", "IF")))

	filtered := testEngine(t, func(c *Config) { c.Selection.DevelopmentTypes = []string{"New"} })
	r := rec(0, "LYMES", "ERP", "IF")
	assert.False(t, filtered.IsBase(r))
	r.DevelopmentType = " new "
	assert.True(t, filtered.IsBase(r))
}

func TestEngine_ReconcileAll_EndToEnd(t *testing.T) {
	e := testEngine(t, nil)
	catalog := []InterfaceRecord{
		rec(0, "LYMES", "LZWMS", "IF_001"),
		rec(1, "LHMES", "VOWMS", "IF_001"),
	}

	results, err := e.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0, r.Base.RowIndex)
	assert.Equal(t, MatchStatusMatched, r.MatchStatus)
	assert.Equal(t, RuleBothMatched, r.Rule)
	require.NotNil(t, r.Match)
	assert.Equal(t, 1, r.Match.Record.RowIndex)
	assert.Empty(t, r.Findings)
	assert.Equal(t, SeverityOK, r.Status)
}

func TestEngine_ReconcileAll_Ambiguous(t *testing.T) {
	e := testEngine(t, nil)
	catalog := []InterfaceRecord{
		rec(0, "LYMES", "LZWMS", "IF_001"),
		rec(1, "LHMES", "XX", "IF_001"),
		rec(2, "YY", "VOWMS", "IF_001"),
	}

	results, err := e.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, MatchStatusAmbiguous, r.MatchStatus)
	assert.Nil(t, r.Match)
	assert.Len(t, r.Candidates, 2)
	assert.Equal(t, SeverityError, r.Status)
	assert.Contains(t, r.Error, "ambiguous")
	assert.Contains(t, r.Error, "[1 2]")
}

func TestEngine_ReconcileAll_AmbiguousReceiverOnly(t *testing.T) {
	e := testEngine(t, nil)
	catalog := []InterfaceRecord{
		rec(0, "LYMES", "LZWMS", "IF_001"),
		rec(1, "AAA", "VOWMS", "IF_001"),
		rec(2, "BBB", "VOWMS", "IF_001"),
	}

	results, err := e.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, MatchStatusAmbiguous, r.MatchStatus)
	assert.Nil(t, r.Match)
	require.Len(t, r.Candidates, 2)
	for i, c := range r.Candidates {
		assert.Equal(t, i+1, c.Record.RowIndex)
		assert.True(t, c.ReceiverMatched)
		assert.False(t, c.SenderMatched)
		assert.False(t, c.SenderIdentical)
		assert.False(t, c.ReceiverIdentical)
	}
	assert.Equal(t, SeverityError, r.Status)
	assert.Contains(t, r.Error, "[1 2]")
}

func TestEngine_ReconcileAll_Unmatched(t *testing.T) {
	e := testEngine(t, nil)
	catalog := []InterfaceRecord{rec(0, "LYMES", "ERP", "IF_404")}

	results, err := e.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, MatchStatusUnmatched, results[0].MatchStatus)
	assert.Equal(t, SeverityError, results[0].Status)
	require.Len(t, results[0].Findings, 1)
	assert.Contains(t, results[0].Findings[0].Message, "IF_404")
}

func TestEngine_ReconcileAll_FieldMismatch(t *testing.T) {
	e := testEngine(t, nil)
	base := rec(0, "LYMES", "LZWMS", "IF_001")
	base.Schedule = "DAILY"
	match := rec(1, "LHMES", "VOWMS", "IF_001")
	match.Schedule = "HOURLY"

	results, err := e.ReconcileAll(context.Background(), []InterfaceRecord{base, match})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, "Schedule", results[0].Findings[0].Field)
	assert.Equal(t, SeverityError, results[0].Status)
}

func buildCatalog(n int) []InterfaceRecord {
	var catalog []InterfaceRecord
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("IF_%03d", i)
		switch i % 3 {
		case 0:
			catalog = append(catalog,
				rec(len(catalog), "LYMES", "LZWMS", name),
				rec(len(catalog)+1, "LHMES", "VOWMS", name))
		case 1:
			catalog = append(catalog,
				rec(len(catalog), "LYERP", "SAP", name),
				rec(len(catalog)+1, "LHERP", "XX", name),
				rec(len(catalog)+2, "YY", "SAP", name))
		default:
			catalog = append(catalog, rec(len(catalog), "LZWMS", "ERP", name))
		}
	}
	return catalog
}

func TestEngine_ReconcileAll_WorkersKeepOrder(t *testing.T) {
	catalog := buildCatalog(60)

	sequential := testEngine(t, func(c *Config) { c.Workers = 1 })
	parallel := testEngine(t, func(c *Config) { c.Workers = 8 })

	want, err := sequential.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)
	got, err := parallel.ReconcileAll(context.Background(), catalog)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Base.RowIndex, got[i].Base.RowIndex)
	}
}

func TestEngine_ReconcileAll_Cancelled(t *testing.T) {
	e := testEngine(t, func(c *Config) { c.Workers = 2 })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ReconcileAll(ctx, buildCatalog(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ReconcileOne(t *testing.T) {
	e := testEngine(t, nil)
	catalog := []InterfaceRecord{
		rec(10, "LYMES", "LZWMS", "IF_001"),
		rec(11, "LHMES", "VOWMS", "IF_001"),
	}

	r, err := e.ReconcileOne(context.Background(), catalog, 10)
	require.NoError(t, err)
	assert.Equal(t, MatchStatusMatched, r.MatchStatus)
	assert.Equal(t, 11, r.Match.Record.RowIndex)

	_, err = e.ReconcileOne(context.Background(), catalog, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_CheckColumns(t *testing.T) {
	schema := new(mockSchema)
	schema.On("LoadColumns", mock.Anything, "LYOWN", "TB_SEND").Return(map[string]ColumnDescriptor{
		"ORDER_NO": {Name: "ORDER_NO", DataType: "VARCHAR2", Size: "50", Nullable: "Y"},
		"QTY":      {Name: "QTY", DataType: "NUMBER", Size: "22", Nullable: "N"},
	}, nil).Once()
	schema.On("LoadColumns", mock.Anything, "LHOWN", "TB_RECV").Return(map[string]ColumnDescriptor{
		"ORDER_NO": {Name: "ORDER_NO", DataType: "VARCHAR2", Size: "30", Nullable: "N"},
		"QTY":      {Name: "QTY", DataType: "NUMBER", Size: "22", Nullable: "N"},
	}, nil).Once()
	schema.On("LoadColumns", mock.Anything, "LHOWN", "TB_GONE").
		Return(nil, &NotFoundError{Resource: "table", Name: "LHOWN.TB_GONE"}).Once()

	mappings := []ColumnMapping{
		mapping("order_no", "ORDER_NO"),
		mapping("QTY", "QTY"),
		{Send: ColumnRef{Owner: "LYOWN", Table: "TB_SEND", Column: "QTY"}, Recv: ColumnRef{Owner: "LHOWN", Table: "TB_GONE", Column: "QTY"}},
		{Send: ColumnRef{Owner: "LYOWN", Table: "TB_SEND", Column: "QTY"}, Recv: ColumnRef{Owner: "LHOWN", Table: "TB_GONE", Column: "QTY2"}},
		mapping("", ""),
	}

	e := testEngine(t, func(c *Config) { c.Workers = 4 })
	results, err := e.CheckColumns(context.Background(), mappings, NewSchemaCache(schema, 0))
	require.NoError(t, err)
	require.Len(t, results, len(mappings))

	// size and nullability
	assert.Equal(t, SeverityWarning, results[0].Status)
	assert.Len(t, results[0].Findings, 2)

	assert.Equal(t, SeverityOK, results[1].Status)

	for _, r := range results[2:4] {
		require.Len(t, r.Findings, 1)
		assert.Equal(t, "recv table not found (LHOWN.TB_GONE)", r.Findings[0].Message)
	}

	assert.Equal(t, SeverityOK, results[4].Status)
	schema.AssertExpectations(t)
}
