package watcher

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

const manifestExt = ".yaml"

// Fingerprints tracks manifest content hashes below a plugins root so file
// system noise can be told apart from real plugin changes. A write that
// leaves the manifest bytes unchanged produces no event.
type Fingerprints struct {
	mu     sync.Mutex
	root   string
	log    ports.Logger
	hashes map[unique.Handle[string]]uint64
}

// NewFingerprints creates an empty fingerprint set for the given plugins root.
func NewFingerprints(root string, log ports.Logger) *Fingerprints {
	return &Fingerprints{
		root:   root,
		log:    log,
		hashes: make(map[unique.Handle[string]]uint64),
	}
}

// Prime records every manifest currently below the root. Batches classified
// afterwards only produce events for changes relative to this baseline.
func (f *Fingerprints) Prime() {
	f.mu.Lock()
	defer f.mu.Unlock()

	_ = filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if shouldSkipDirectories[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		basename, ok := f.manifestBasename(path)
		if !ok {
			return nil
		}
		if sum, err := fingerprintFile(path); err == nil {
			f.hashes[unique.Make(basename)] = sum
		}
		return nil
	})
}

// Classify resolves a debounced batch of paths into lifecycle events and
// advances the fingerprint baseline. A manifest that appeared is an
// activation, one that vanished is a deactivation, and one whose content
// changed is a completed upgrade. Paths that are not manifests, and writes
// that left the content unchanged, are dropped.
func (f *Fingerprints) Classify(paths []string) []domain.LifecycleEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Sort for a deterministic event order within a coalesced batch.
	slices.Sort(paths)

	events := make([]domain.LifecycleEvent, 0, len(paths))
	for _, path := range paths {
		basename, ok := f.manifestBasename(path)
		if !ok {
			continue
		}
		handle := unique.Make(basename)
		previous, known := f.hashes[handle]

		sum, err := fingerprintFile(path)
		switch {
		case os.IsNotExist(err):
			if !known {
				continue
			}
			delete(f.hashes, handle)
			events = append(events, lifecycleEvent(domain.EventPluginDeactivated, basename))
		case err != nil:
			f.log.Debug("skipping unreadable manifest " + basename)
		case !known:
			f.hashes[handle] = sum
			events = append(events, lifecycleEvent(domain.EventPluginActivated, basename))
		case sum != previous:
			f.hashes[handle] = sum
			events = append(events, lifecycleEvent(domain.EventUpgradeCompleted, basename))
		}
	}
	return events
}

func lifecycleEvent(kind domain.EventKind, basename string) domain.LifecycleEvent {
	return domain.LifecycleEvent{
		Kind:     kind,
		Package:  domain.PackagePlugin,
		Basename: basename,
	}
}

// manifestBasename maps a path below the root to the plugin basename it
// would carry, or false when the path cannot be a manifest. Valid shapes are
// name.yaml at the root and name/name.yaml one level down.
func (f *Fingerprints) manifestBasename(path string) (string, bool) {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") || !strings.HasSuffix(rel, manifestExt) {
		return "", false
	}
	parts := strings.Split(rel, "/")
	switch len(parts) {
	case 1:
		return rel, true
	case 2:
		if parts[1] == parts[0]+manifestExt {
			return rel, true
		}
	}
	return "", false
}

// fingerprintFile computes the XXHash of a manifest's content.
func fingerprintFile(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is confined to the watched plugins root
	if err != nil {
		return 0, err
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}
