// Package config provides configuration management for the Interface Reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared on the struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: connection details (mysql, postgres, sqlite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Catalog: where the interface catalog and column mappings are read from
//   - Reconcile: ruleset path, workers, verbosity and report prefix
//
// # Ruleset
//
// Rewrite rules, the field comparison table, column type families, special
// cases and source column names live in a separate YAML file loaded by
// LoadRuleset. A malformed ruleset is a *reconcile.ConfigurationError.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rules, err := config.LoadRuleset(cfg.Reconcile.Ruleset)
package config
