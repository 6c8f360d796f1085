package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"interface-reconciler/core/config"
	"interface-reconciler/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "csv", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.IsValidSource())
	assert.Equal(t, "catalog/interfaces.csv", cfg.Catalog.Object)
	assert.Equal(t, "ruleset.yaml", cfg.Reconcile.Ruleset)
	assert.Equal(t, "reports/", cfg.Reconcile.ReportPrefix)
	assert.False(t, cfg.Reconcile.Verbose)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	env := "CATALOG_SOURCE=database\nRECONCILE_WORKERS=6\nRECONCILE_VERBOSE=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("RECONCILE_WORKERS")
		os.Unsetenv("RECONCILE_VERBOSE")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, config.SourceDatabase, cfg.Catalog.Source)
	assert.Equal(t, 6, cfg.Reconcile.Workers)
	assert.True(t, cfg.Reconcile.Verbose)
}

const rulesetYAML = `
rewrite_rules:
  - from: LY
    to: LH
  - from: LZ
    to: VO
fields:
  - label: Sender
    field: sender_system
    strategy: exact_after_transform
  - label: Task
    field: task
    strategy: special_case
    severity: warning
special_cases:
  - base: LY_ORDER_SYNC
    matched: ORDER_SYNC_V2
selection:
  development_types: [New]
catalog_columns:
  sender_system: SENDER SYSTEM
  interface_name: IF NAME
workers: 2
`

func writeRuleset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ruleset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadRuleset(t *testing.T) {
	rs, err := config.LoadRuleset(writeRuleset(t, rulesetYAML))
	require.NoError(t, err)

	assert.Equal(t, reconcile.RewriteRules{{From: "LY", To: "LH"}, {From: "LZ", To: "VO"}}, rs.Rules)
	require.Len(t, rs.Fields, 2)
	assert.Equal(t, "WARNING", rs.Fields[1].Severity)
	assert.Equal(t, reconcile.StrategySpecialCase, rs.Fields[1].Strategy)
	assert.Equal(t, []reconcile.EquivalencePair{{Base: "LY_ORDER_SYNC", Matched: "ORDER_SYNC_V2"}}, rs.SpecialCases)
	assert.Equal(t, []string{"New"}, rs.Selection.DevelopmentTypes)
	assert.Equal(t, 2, rs.Workers)

	assert.Equal(t, "SENDER SYSTEM", rs.CatalogColumns[reconcile.FieldSenderSystem])
	assert.Equal(t, "IF NAME", rs.CatalogColumns[reconcile.FieldInterfaceName])
	assert.Equal(t, reconcile.FieldTask, rs.CatalogColumns[reconcile.FieldTask])
	assert.Equal(t, config.MappingSendOwner, rs.MappingColumns[config.MappingSendOwner])
	assert.Equal(t, reconcile.FieldSenderSystem, rs.DBCatalogColumns[reconcile.FieldSenderSystem])
	assert.Equal(t, config.MappingRecvColumn, rs.DBMappingColumns[config.MappingRecvColumn])

	rs.Apply(config.ReconcileConfig{Workers: 8, Verbose: true})
	assert.Equal(t, 8, rs.Workers)
	assert.True(t, rs.Verbose)
}

func TestLoadRuleset_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadRuleset(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("no rules", func(t *testing.T) {
		_, err := config.LoadRuleset(writeRuleset(t, "workers: 1\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, reconcile.ErrConfiguration))
	})

	t.Run("unknown catalog field", func(t *testing.T) {
		body := "rewrite_rules:\n  - from: LY\n    to: LH\ncatalog_columns:\n  colour: COLOUR\n"
		_, err := config.LoadRuleset(writeRuleset(t, body))
		require.Error(t, err)
		assert.True(t, errors.Is(err, reconcile.ErrConfiguration))
	})
}
