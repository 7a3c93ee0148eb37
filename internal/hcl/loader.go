package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/craftplan/internal/config"
	"github.com/specialistvlad/craftplan/internal/ctxlog"
	"github.com/specialistvlad/craftplan/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses all .hcl files reachable from the given paths and merges
// their declarations into a single model. Files are processed in sorted
// path order and blocks within a file in declaration order, so the
// component order in the returned model is deterministic.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findCatalogFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl catalog files found in %v", paths)
	}
	logger.Debug("Discovered catalog files.", "count", len(files))

	model := &config.Model{
		Speeds: make(map[string]float64),
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode catalog file %s: %w", file, diags)
		}

		for _, block := range root.Components {
			def, err := l.translateComponent(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Components = append(model.Components, def)
		}

		if root.Speeds != nil {
			speeds, err := l.translateSpeeds(root.Speeds)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			for category, multiplier := range speeds {
				model.Speeds[category] = multiplier
			}
		}
	}

	logger.Debug("HCL loading complete.",
		"components", len(model.Components), "speeds", len(model.Speeds))
	return model, nil
}

// findCatalogFiles resolves the given paths into a deduplicated, sorted
// list of .hcl files. A path may be a single file or a directory that is
// searched recursively. A missing path is an error here: unlike optional
// module directories, a catalog the user pointed at must exist.
func (l *Loader) findCatalogFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing catalog path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			found = []string{path}
		}

		for _, f := range found {
			if _, dup := seen[f]; !dup {
				all = append(all, f)
				seen[f] = struct{}{}
			}
		}
	}
	return all, nil
}
