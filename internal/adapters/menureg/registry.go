// Package menureg reads the host's admin-menu registry from a YAML export
// file. In an embedded deployment the host would hand slink its live menu
// tables instead; the file model keeps the CLI self-contained.
package menureg

import (
	"os"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// export mirrors the YAML structure of a menus export file.
type export struct {
	Menus    []menuItemDTO            `yaml:"menus"`
	Submenus map[string][]menuItemDTO `yaml:"submenus"`
}

type menuItemDTO struct {
	Title string `yaml:"title"`
	Slug  string `yaml:"slug"`
}

// Registry implements ports.MenuRegistry against a menus export file. The
// file is re-read on every call so a running watch session observes edits.
type Registry struct {
	path string
}

// NewRegistry creates a registry backed by the export file at path.
func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

// TopLevel returns the export's top-level menu entries in file order.
func (r *Registry) TopLevel() ([]ports.RawMenuItem, error) {
	ex, err := r.load()
	if err != nil {
		return nil, err
	}

	items := make([]ports.RawMenuItem, 0, len(ex.Menus))
	for _, m := range ex.Menus {
		items = append(items, ports.RawMenuItem{Title: m.Title, Slug: m.Slug})
	}
	return items, nil
}

// Submenus returns the export's submenu entries grouped by parent slug.
func (r *Registry) Submenus() (map[string][]ports.RawMenuItem, error) {
	ex, err := r.load()
	if err != nil {
		return nil, err
	}

	subs := make(map[string][]ports.RawMenuItem, len(ex.Submenus))
	for parent, entries := range ex.Submenus {
		items := make([]ports.RawMenuItem, 0, len(entries))
		for _, m := range entries {
			items = append(items, ports.RawMenuItem{Title: m.Title, Slug: m.Slug})
		}
		subs[parent] = items
	}
	return subs, nil
}

func (r *Registry) load() (*export, error) {
	// #nosec G304 -- path comes from validated configuration
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMenusExportUnreadable.Error()), "path", r.path)
	}

	var ex export
	if parseErr := yaml.Unmarshal(raw, &ex); parseErr != nil {
		return nil, zerr.With(zerr.Wrap(parseErr, domain.ErrMenusExportUnreadable.Error()), "path", r.path)
	}
	return &ex, nil
}
