// Package inventory caches the installed-plugin listing so repeated
// resolutions avoid rescanning the plugins directory.
package inventory

import (
	"context"
	"encoding/json"
	"time"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTTL is how long a scanned inventory stays valid. Longer than the
// menu catalog TTL since installed plugins change less often than menus.
const DefaultTTL = 24 * time.Hour

const baseKey = "slink:plugins"

// Inventory serves basename to record mappings for installed plugins out of
// the transient store, rescanning on a miss.
type Inventory struct {
	store    ports.TransientStore
	registry ports.PluginRegistry
	log      ports.Logger
	site     domain.Site
	ttl      time.Duration
}

// New creates an Inventory. A non-positive ttl falls back to DefaultTTL.
func New(store ports.TransientStore, registry ports.PluginRegistry, log ports.Logger, site domain.Site, ttl time.Duration) *Inventory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Inventory{
		store:    store,
		registry: registry,
		log:      log,
		site:     site,
		ttl:      ttl,
	}
}

// Key returns the transient key the inventory is stored under, scoped to the
// site in network installs.
func (i *Inventory) Key() string {
	return i.site.ScopedKey(baseKey)
}

// Plugins returns every installed plugin keyed by basename, merged with
// network-activated plugins not found by the scan. The result is never nil;
// store and registry failures degrade to whatever could be gathered.
func (i *Inventory) Plugins(ctx context.Context) map[string]domain.PluginRecord {
	raw, err := i.store.Get(ctx, i.Key())
	if err != nil {
		i.log.Debug("reading plugin inventory failed: " + err.Error())
	}
	if raw != nil {
		var records map[string]domain.PluginRecord
		if err := json.Unmarshal(raw, &records); err == nil && records != nil {
			return records
		}
		i.log.Debug("plugin inventory payload is malformed, rescanning")
	}
	return i.rescan(ctx)
}

// Invalidate drops the stored inventory so the next Plugins call rescans.
func (i *Inventory) Invalidate(ctx context.Context) error {
	if err := i.store.Delete(ctx, i.Key()); err != nil {
		return zerr.Wrap(err, "invalidating plugin inventory")
	}
	return nil
}

// rescan performs the expensive enumeration, merges network-activated
// plugins via their own manifests, and persists the result when non-empty.
func (i *Inventory) rescan(ctx context.Context) map[string]domain.PluginRecord {
	records, err := i.registry.Installed(ctx)
	if err != nil {
		i.log.Debug("plugin scan failed: " + err.Error())
	}
	if records == nil {
		records = make(map[string]domain.PluginRecord)
	}

	for _, basename := range i.registry.NetworkActive() {
		if _, ok := records[basename]; ok {
			continue
		}
		record, err := i.registry.Describe(ctx, basename)
		if err != nil {
			i.log.Debug("skipping unreadable network plugin " + basename)
			continue
		}
		records[basename] = record
	}

	if len(records) == 0 {
		return records
	}

	payload, err := json.Marshal(records)
	if err != nil {
		i.log.Debug("encoding plugin inventory failed: " + err.Error())
		return records
	}
	if err := i.store.Set(ctx, i.Key(), payload, i.ttl); err != nil {
		i.log.Debug("persisting plugin inventory failed: " + err.Error())
	}
	return records
}
