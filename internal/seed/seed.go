// Package seed imports resource records into the catalog from YAML files.
package seed

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/rtgeorge/resourceboard/internal/catalog"
	"github.com/rtgeorge/resourceboard/internal/progress"
)

// Run imports every YAML file matching the doublestar pattern. Each file
// holds a list of resource records; records without an id get a fresh
// uuid, records with an id replace any stored record with the same id.
// Returns the number of records imported.
func Run(ctx context.Context, store *catalog.Store, pattern string, reporter progress.Reporter) (int, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return 0, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(paths)

	if reporter != nil {
		reporter.Start(len(paths))
		defer reporter.Finish()
	}

	imported := 0
	for i, path := range paths {
		n, err := importFile(ctx, store, path)
		if err != nil {
			return imported, fmt.Errorf("importing %s: %w", path, err)
		}
		imported += n
		if reporter != nil {
			reporter.Update(i+1, path)
		}
	}
	return imported, nil
}

func importFile(ctx context.Context, store *catalog.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var records []catalog.Resource
	if err := yaml.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parsing yaml: %w", err)
	}

	for i := range records {
		r := &records[i]
		if r.Title == "" {
			return 0, fmt.Errorf("record %d has no title", i)
		}
		if _, ok := catalog.Lookup(r.CategorySlug); !ok {
			return 0, fmt.Errorf("record %d (%q) has unknown category %q", i, r.Title, r.CategorySlug)
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if err := store.Upsert(ctx, *r); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}
