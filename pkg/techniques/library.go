// Package techniques provides the static therapeutic-technique catalog the
// topic extractor keys its technique_id against.
package techniques

import (
	_ "embed"
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogEntry struct {
	Name       string `yaml:"name"`
	Definition string `yaml:"definition"`
}

type catalogFile struct {
	Techniques map[string]catalogEntry `yaml:"techniques"`
}

// Library is the read-only shared technique catalog. Reload swaps the whole
// map atomically, so lookups never block.
type Library struct {
	entries atomic.Pointer[map[string]models.TechniqueDefinition]
	path    string // empty = embedded catalog only
}

// Load builds a Library from the embedded catalog, overlaid with the YAML
// file at path when non-empty.
func Load(path string) (*Library, error) {
	l := &Library{path: path}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the catalog. Safe to call concurrently with lookups.
func (l *Library) Reload() error {
	entries, err := parseCatalog(embeddedCatalog)
	if err != nil {
		return fmt.Errorf("embedded technique catalog is invalid: %w", err)
	}

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return fmt.Errorf("failed to read technique catalog %s: %w", l.path, err)
		}
		override, err := parseCatalog(data)
		if err != nil {
			return fmt.Errorf("technique catalog %s is invalid: %w", l.path, err)
		}
		for id, def := range override {
			entries[id] = def
		}
	}

	l.entries.Store(&entries)
	return nil
}

// Lookup resolves a technique id. Returns nil for unknown ids — callers
// treat free-text technique ids as valid but undefined.
func (l *Library) Lookup(id string) *models.TechniqueDefinition {
	if id == "" {
		return nil
	}
	entries := *l.entries.Load()
	if def, ok := entries[id]; ok {
		return &def
	}
	return nil
}

// Len returns the number of catalog entries.
func (l *Library) Len() int {
	return len(*l.entries.Load())
}

// IDs returns all known technique ids (for prompt assembly).
func (l *Library) IDs() []string {
	entries := *l.entries.Load()
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	return ids
}

func parseCatalog(data []byte) (map[string]models.TechniqueDefinition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	entries := make(map[string]models.TechniqueDefinition, len(file.Techniques))
	for id, entry := range file.Techniques {
		if entry.Name == "" || entry.Definition == "" {
			return nil, fmt.Errorf("technique %q: name and definition are required", id)
		}
		entries[id] = models.TechniqueDefinition{
			ID:         id,
			Name:       entry.Name,
			Definition: entry.Definition,
		}
	}
	return entries, nil
}
