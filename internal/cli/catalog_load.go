package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/importer"
)

// loadCatalog seeds the day and session tables, from path when set and from
// the bundled data otherwise.
func loadCatalog(ctx context.Context, a *App, path string) (*app.LoadResult, error) {
	var (
		tables *importer.Tables
		err    error
	)
	if path != "" {
		tables, err = importer.LoadTables(path)
		if err != nil {
			return nil, fmt.Errorf("reading tables %s: %w", path, err)
		}
	} else {
		tables, err = importer.BundledTables()
		if err != nil {
			return nil, err
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return a.Catalog.LoadTables(ctx, tables)
}
