package sources

import (
	"errors"
	"fmt"

	"interface-reconciler/core/config"
	"interface-reconciler/core/reconcile"
	"interface-reconciler/core/storage"

	"gorm.io/gorm"
)

// Options carries everything needed to build the configured sources.
type Options struct {
	Catalog config.CatalogConfig
	Ruleset *config.Ruleset
	DB      *gorm.DB
	Client  storage.Client
	Bucket  string
}

// New builds the catalog and mapping sources selected by the configuration.
func New(opts Options) (reconcile.CatalogSource, reconcile.MappingSource, error) {
	var catalogCols, mappingCols, dbCatalogCols, dbMappingCols map[string]string
	if opts.Ruleset != nil {
		catalogCols, mappingCols = opts.Ruleset.CatalogColumns, opts.Ruleset.MappingColumns
		dbCatalogCols, dbMappingCols = opts.Ruleset.DBCatalogColumns, opts.Ruleset.DBMappingColumns
	}

	switch opts.Catalog.Source {
	case config.SourceCSV:
		catalogOpen, err := opener(opts, opts.Catalog.File, opts.Catalog.Object)
		if err != nil {
			return nil, nil, err
		}
		mappingOpen, err := opener(opts, opts.Catalog.MappingFile, opts.Catalog.MappingObject)
		if err != nil {
			return nil, nil, err
		}
		return NewCSVCatalog(catalogOpen, catalogCols), NewCSVMappings(mappingOpen, mappingCols), nil
	case config.SourceDatabase:
		if opts.DB == nil {
			return nil, nil, errors.New("catalog source database requires a database connection")
		}
		return NewDBCatalog(opts.DB, opts.Catalog.Table, opts.Catalog.OrderBy, dbCatalogCols),
			NewDBMappings(opts.DB, opts.Catalog.MappingTable, opts.Catalog.OrderBy, dbMappingCols), nil
	default:
		return nil, nil, &reconcile.ConfigurationError{
			Section: "catalog",
			Message: fmt.Sprintf("unknown source %q", opts.Catalog.Source),
		}
	}
}

func opener(opts Options, file, object string) (Opener, error) {
	if file != "" {
		return FileOpener(file), nil
	}
	if opts.Client == nil {
		return nil, fmt.Errorf("object %s requires a storage client", object)
	}
	return ObjectOpener(opts.Client, opts.Bucket, object), nil
}
