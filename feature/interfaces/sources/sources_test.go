package sources

import (
	"errors"
	"testing"

	"interface-reconciler/core/config"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("CSV from storage", func(t *testing.T) {
		cat, maps, err := New(Options{
			Catalog: config.CatalogConfig{Source: config.SourceCSV, Object: "catalog/interfaces.csv", MappingObject: "mappings/columns.csv"},
			Client:  new(mocks.Client),
			Bucket:  "interfaces",
		})
		require.NoError(t, err)
		assert.IsType(t, &CSVCatalog{}, cat)
		assert.IsType(t, &CSVMappings{}, maps)
	})

	t.Run("CSV object without client", func(t *testing.T) {
		_, _, err := New(Options{Catalog: config.CatalogConfig{Source: config.SourceCSV, Object: "catalog/interfaces.csv"}})
		assert.Error(t, err)
	})

	t.Run("CSV from files", func(t *testing.T) {
		cat, _, err := New(Options{Catalog: config.CatalogConfig{Source: config.SourceCSV, File: "a.csv", MappingFile: "b.csv"}})
		require.NoError(t, err)
		assert.Equal(t, "csv", cat.Name())
	})

	t.Run("Database", func(t *testing.T) {
		db := sqliteDB(t)
		cat, maps, err := New(Options{
			Catalog: config.CatalogConfig{Source: config.SourceDatabase, Table: "interface_catalog", MappingTable: "column_mappings"},
			Ruleset: &config.Ruleset{},
			DB:      db,
		})
		require.NoError(t, err)
		assert.IsType(t, &DBCatalog{}, cat)
		assert.IsType(t, &DBMappings{}, maps)
	})

	t.Run("Database without connection", func(t *testing.T) {
		_, _, err := New(Options{Catalog: config.CatalogConfig{Source: config.SourceDatabase}})
		assert.Error(t, err)
	})

	t.Run("Unknown source", func(t *testing.T) {
		_, _, err := New(Options{Catalog: config.CatalogConfig{Source: "excel"}})
		assert.True(t, errors.Is(err, reconcile.ErrConfiguration))
	})
}
