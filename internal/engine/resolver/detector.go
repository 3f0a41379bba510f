package resolver

import (
	"context"
	"net/url"
	"strings"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/engine/menucache"
	"go.trai.ch/zerr"
)

// Detector is one settings-URL discovery strategy. Detectors run in a fixed
// priority order; the first one to produce a usable URL wins the plugin.
type Detector interface {
	Name() string
	Find(ctx context.Context, basename string) ([]string, error)
}

// OverrideDetector serves URLs the operator stored for a plugin. Relative
// admin links are resolved against the site's admin base.
type OverrideDetector struct {
	store ports.OverrideStore
	site  domain.Site
}

// NewOverrideDetector creates an OverrideDetector.
func NewOverrideDetector(store ports.OverrideStore, site domain.Site) *OverrideDetector {
	return &OverrideDetector{store: store, site: site}
}

func (d *OverrideDetector) Name() string { return "override" }

// Find returns the stored override URLs for basename in stored order,
// resolved to absolute form.
func (d *OverrideDetector) Find(ctx context.Context, basename string) ([]string, error) {
	overrides, err := d.store.Load(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "loading overrides")
	}

	stored := overrides[basename]
	urls := make([]string, 0, len(stored))
	for _, raw := range stored {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !isAbsoluteURL(raw) {
			raw = d.site.AdminURL(raw)
		}
		urls = append(urls, raw)
	}
	return urls, nil
}

// MenuDetector matches candidate slugs derived from the plugin's directory
// and file name against the cached admin-menu catalog.
type MenuDetector struct {
	cache *menucache.Cache
	terms []string
}

// NewMenuDetector creates a MenuDetector. Extra settings terms extend the
// built-in candidate suffix list.
func NewMenuDetector(cache *menucache.Cache, extraTerms []string) *MenuDetector {
	return &MenuDetector{cache: cache, terms: extraTerms}
}

func (d *MenuDetector) Name() string { return "menu" }

// Find returns catalog URLs whose slug matches a candidate, in catalog order.
func (d *MenuDetector) Find(ctx context.Context, basename string) ([]string, error) {
	dir, stem := domain.SplitBasename(basename)
	candidates := domain.Candidates(dir, stem, d.terms...)
	if len(candidates) == 0 {
		return nil, nil
	}

	catalog, err := d.cache.Load(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "loading menu catalog")
	}
	return catalog.URLsFor(candidates), nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
