package config

import (
	"fmt"

	"interface-reconciler/core/reconcile"

	"github.com/spf13/viper"
)

// Mapping table fields, used as keys of Ruleset.MappingColumns.
const (
	MappingSendOwner  = "send_owner"
	MappingSendTable  = "send_table"
	MappingSendColumn = "send_column"
	MappingRecvOwner  = "recv_owner"
	MappingRecvTable  = "recv_table"
	MappingRecvColumn = "recv_column"
)

// MappingFields lists every column mapping field in table order.
var MappingFields = []string{
	MappingSendOwner, MappingSendTable, MappingSendColumn,
	MappingRecvOwner, MappingRecvTable, MappingRecvColumn,
}

// Ruleset is the rule file of a run: the engine configuration plus the source
// column names that feed InterfaceRecord and ColumnMapping fields. CSV headers
// and table columns are mapped separately.
type Ruleset struct {
	reconcile.Config `mapstructure:",squash"`

	// CatalogColumns maps a record field (see reconcile.RecordFields) to its
	// catalog header or table column. Unlisted fields use the field name.
	CatalogColumns map[string]string `mapstructure:"catalog_columns"`

	// MappingColumns maps a column mapping field (see MappingFields) to its
	// header or table column. Unlisted fields use the field name.
	MappingColumns map[string]string `mapstructure:"mapping_columns"`

	// DBCatalogColumns maps a record field to its column in the catalog table.
	// Unlisted fields use the field name, which is the layout catalog import writes.
	DBCatalogColumns map[string]string `mapstructure:"db_catalog_columns"`

	// DBMappingColumns maps a column mapping field to its column in the mapping table.
	DBMappingColumns map[string]string `mapstructure:"db_mapping_columns"`
}

// LoadRuleset reads a YAML (or JSON/TOML, by extension) ruleset, fills column
// defaults and validates the engine configuration. Validation failures are
// *reconcile.ConfigurationError.
func LoadRuleset(path string) (*Ruleset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read ruleset %s: %w", path, err)
	}

	var rs Ruleset
	if err := v.Unmarshal(&rs); err != nil {
		return nil, &reconcile.ConfigurationError{Section: "ruleset", Message: err.Error()}
	}
	if err := rs.normalize(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// normalize fills column defaults and validates the engine section.
func (rs *Ruleset) normalize() error {
	var err error
	if rs.CatalogColumns, err = columnMap("catalog_columns", rs.CatalogColumns, reconcile.RecordFields); err != nil {
		return err
	}
	if rs.MappingColumns, err = columnMap("mapping_columns", rs.MappingColumns, MappingFields); err != nil {
		return err
	}
	if rs.DBCatalogColumns, err = columnMap("db_catalog_columns", rs.DBCatalogColumns, reconcile.RecordFields); err != nil {
		return err
	}
	if rs.DBMappingColumns, err = columnMap("db_mapping_columns", rs.DBMappingColumns, MappingFields); err != nil {
		return err
	}
	return rs.Config.Validate()
}

func columnMap(section string, in map[string]string, fields []string) (map[string]string, error) {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}
	out := make(map[string]string, len(fields))
	for k, col := range in {
		if _, ok := known[k]; !ok {
			return nil, &reconcile.ConfigurationError{Section: section, Message: fmt.Sprintf("unknown field %q", k)}
		}
		out[k] = col
	}
	for _, f := range fields {
		if out[f] == "" {
			out[f] = f
		}
	}
	return out, nil
}

// Apply overlays run settings from the environment-driven configuration.
func (rs *Ruleset) Apply(cfg ReconcileConfig) {
	if cfg.Workers > 0 {
		rs.Workers = cfg.Workers
	}
	if cfg.Verbose {
		rs.Verbose = true
	}
}
