package config

import (
	"reflect"
	"strings"

	"interface-reconciler/core/database"
	"interface-reconciler/core/logger"
	"interface-reconciler/core/server"
	"interface-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Catalog tells where the interface catalog and column mappings come from.
	Catalog CatalogConfig `mapstructure:"catalog"`
	// Reconcile holds run settings of the reconciliation engine.
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
}

// CatalogConfig locates the interface catalog and the column mapping table.
type CatalogConfig struct {
	// Source is either "csv" or "database".
	Source string `mapstructure:"source" default:"csv"`
	// File is a local catalog CSV. When empty the catalog is read from Object.
	File string `mapstructure:"file" default:""`
	// Object is the catalog CSV key inside the storage bucket.
	Object string `mapstructure:"object" default:"catalog/interfaces.csv"`
	// MappingFile is a local column mapping CSV. When empty MappingObject is read.
	MappingFile string `mapstructure:"mapping_file" default:""`
	// MappingObject is the column mapping CSV key inside the storage bucket.
	MappingObject string `mapstructure:"mapping_object" default:"mappings/columns.csv"`
	// Table is the catalog table used by the database source.
	Table string `mapstructure:"table" default:"interface_catalog"`
	// MappingTable is the column mapping table used by the database source.
	MappingTable string `mapstructure:"mapping_table" default:"column_mappings"`
	// OrderBy fixes the row order of both tables, and so the row indexes.
	OrderBy string `mapstructure:"order_by" default:"id"`
}

// Catalog source kinds.
const (
	SourceCSV      = "csv"
	SourceDatabase = "database"
)

// IsValidSource checks if the configured catalog source is known.
func (c CatalogConfig) IsValidSource() bool {
	switch c.Source {
	case SourceCSV, SourceDatabase:
		return true
	default:
		return false
	}
}

// ReconcileConfig holds run settings. The rules themselves live in the ruleset file.
type ReconcileConfig struct {
	// Ruleset is the path of the YAML ruleset.
	Ruleset string `mapstructure:"ruleset" default:"ruleset.yaml"`
	// Workers bounds concurrent record processing. Overrides the ruleset when > 0.
	Workers int `mapstructure:"workers" default:"0"`
	// Verbose keeps OK findings in reports.
	Verbose bool `mapstructure:"verbose" default:"false"`
	// ReportPrefix is the storage prefix for uploaded reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/"`
	// SchemaTTLSeconds expires cached table metadata in the long-running server. 0 keeps it per run.
	SchemaTTLSeconds int `mapstructure:"schema_ttl_seconds" default:"0"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_SOURCE -> catalog.source)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
