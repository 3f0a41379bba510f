// Package pluginfs implements the plugin registry against a plugins
// directory on disk. Each plugin is a directory containing a manifest named
// after it (my-plugin/my-plugin.yaml) or a bare manifest file at the root.
package pluginfs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const manifestExt = ".yaml"

// manifestDTO mirrors the YAML structure of a plugin manifest.
type manifestDTO struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	Network     bool   `yaml:"network"`
}

// Registry implements ports.PluginRegistry by scanning a plugins directory.
type Registry struct {
	root          string
	networkActive []string
	log           ports.Logger
}

// NewRegistry creates a registry over the plugins directory at root.
// networkActive lists basenames activated network-wide in configuration.
func NewRegistry(root string, networkActive []string, log ports.Logger) *Registry {
	return &Registry{
		root:          root,
		networkActive: networkActive,
		log:           log,
	}
}

// Installed enumerates all plugins under the root. Broken manifests are
// skipped so one bad plugin cannot hide the rest; only an unreadable root
// fails the enumeration.
func (r *Registry) Installed(ctx context.Context) (map[string]domain.PluginRecord, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "reading plugins directory"), "root", r.root)
	}

	installed := make(map[string]domain.PluginRecord)
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range entries {
		basename, ok := r.manifestBasename(entry)
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			record, err := r.readManifest(basename)
			if err != nil {
				r.log.Debug("skipping unreadable manifest " + basename)
				return nil
			}
			mu.Lock()
			installed[basename] = record
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return installed, nil
}

// NetworkActive returns the basenames activated network-wide in configuration.
func (r *Registry) NetworkActive() []string {
	return slices.Clone(r.networkActive)
}

// Describe reads the manifest of a single plugin.
func (r *Registry) Describe(_ context.Context, basename string) (domain.PluginRecord, error) {
	if !validBasename(basename) {
		return domain.PluginRecord{}, zerr.With(domain.ErrPluginNotFound, "basename", basename)
	}
	record, err := r.readManifest(basename)
	if err != nil {
		return domain.PluginRecord{}, err
	}
	return record, nil
}

// manifestBasename maps a root directory entry to the plugin basename it
// would carry, or false when the entry is not a plugin.
func (r *Registry) manifestBasename(entry os.DirEntry) (string, bool) {
	name := entry.Name()
	if entry.IsDir() {
		basename := name + "/" + name + manifestExt
		if _, err := os.Stat(filepath.Join(r.root, name, name+manifestExt)); err != nil {
			return "", false
		}
		return basename, true
	}
	if strings.HasSuffix(name, manifestExt) {
		return name, true
	}
	return "", false
}

func (r *Registry) readManifest(basename string) (domain.PluginRecord, error) {
	path := filepath.Join(r.root, filepath.FromSlash(basename))
	// #nosec G304 -- basename is validated against the plugins root
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.PluginRecord{}, zerr.With(domain.ErrPluginNotFound, "basename", basename)
		}
		return domain.PluginRecord{}, zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "basename", basename)
	}

	var m manifestDTO
	if parseErr := yaml.Unmarshal(raw, &m); parseErr != nil {
		return domain.PluginRecord{}, zerr.With(zerr.Wrap(parseErr, domain.ErrManifestUnreadable.Error()), "basename", basename)
	}

	return domain.PluginRecord{
		Basename:    basename,
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Network:     m.Network || slices.Contains(r.networkActive, basename),
	}, nil
}

// validBasename rejects paths that would escape the plugins root.
func validBasename(basename string) bool {
	if basename == "" || filepath.IsAbs(basename) {
		return false
	}
	clean := filepath.ToSlash(filepath.Clean(basename))
	return clean == basename && !strings.HasPrefix(clean, "../")
}
