// Package menucache builds and serves the cached catalog of registered
// admin-menu slugs.
package menucache

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"time"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTTL is how long a rebuilt catalog stays valid.
const DefaultTTL = 12 * time.Hour

const baseKey = "slink:menu_slugs"

// Cache serves the menu-slug catalog out of the transient store, rebuilding
// it from the live menu registry on a miss. Rebuilds are idempotent; a valid
// stored catalog is returned without touching the registry.
type Cache struct {
	store    ports.TransientStore
	registry ports.MenuRegistry
	log      ports.Logger
	site     domain.Site
	ttl      time.Duration
}

// New creates a Cache. A non-positive ttl falls back to DefaultTTL.
func New(store ports.TransientStore, registry ports.MenuRegistry, log ports.Logger, site domain.Site, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		store:    store,
		registry: registry,
		log:      log,
		site:     site,
		ttl:      ttl,
	}
}

// Key returns the transient key the catalog is stored under, scoped to the
// site in network installs.
func (c *Cache) Key() string {
	return c.site.ScopedKey(baseKey)
}

// Load returns the current catalog. A stored catalog is decoded and returned
// as is; a miss or an undecodable payload triggers a rebuild.
func (c *Cache) Load(ctx context.Context) (domain.Catalog, error) {
	raw, err := c.store.Get(ctx, c.Key())
	if err != nil {
		return nil, zerr.Wrap(err, "reading menu catalog")
	}
	if raw != nil {
		var catalog domain.Catalog
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return catalog, nil
		}
		c.log.Debug("menu catalog payload is malformed, rebuilding")
	}
	return c.rebuild(ctx)
}

// Invalidate drops the stored catalog so the next Load rebuilds it.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.Key()); err != nil {
		return zerr.Wrap(err, "invalidating menu catalog")
	}
	return nil
}

// HandleEvent invalidates the catalog for lifecycle events that can change
// menu registration. Other events are ignored.
func (c *Cache) HandleEvent(ctx context.Context, ev domain.LifecycleEvent) error {
	if !ev.InvalidatesMenuCache() {
		return nil
	}
	c.log.Debug("invalidating menu catalog after " + ev.Kind.String())
	return c.Invalidate(ctx)
}

// rebuild walks the registry and persists the resulting catalog. Slugs are
// stored sanitized so candidate matching happens in normalized space; URLs
// are built from the raw registered identifiers. A build that finds nothing
// is returned but not persisted, so a later load retries once menus exist.
func (c *Cache) rebuild(ctx context.Context) (domain.Catalog, error) {
	top, err := c.registry.TopLevel()
	if err != nil {
		return nil, zerr.Wrap(err, "walking top-level menus")
	}
	subs, err := c.registry.Submenus()
	if err != nil {
		return nil, zerr.Wrap(err, "walking submenus")
	}

	catalog := make(domain.Catalog, 0, len(top))
	for _, item := range top {
		slug := domain.SanitizeSlug(item.Slug)
		if slug == "" {
			continue
		}
		catalog = append(catalog, domain.MenuEntry{
			Slug: slug,
			URL:  domain.BuildAdminURL(item.Slug, ""),
		})
	}
	for _, parent := range slices.Sorted(maps.Keys(subs)) {
		if parent == "" {
			continue
		}
		for _, item := range subs[parent] {
			slug := domain.SanitizeSlug(item.Slug)
			if slug == "" {
				continue
			}
			catalog = append(catalog, domain.MenuEntry{
				Slug:   slug,
				URL:    domain.BuildAdminURL(item.Slug, parent),
				Parent: parent,
			})
		}
	}

	if len(catalog) == 0 {
		c.log.Debug("menu registry produced no entries, catalog not persisted")
		return catalog, nil
	}

	payload, err := json.Marshal(catalog)
	if err != nil {
		return nil, zerr.Wrap(err, "encoding menu catalog")
	}
	if err := c.store.Set(ctx, c.Key(), payload, c.ttl); err != nil {
		return nil, zerr.Wrap(err, "persisting menu catalog")
	}
	c.log.Debug("menu catalog rebuilt")
	return catalog, nil
}
