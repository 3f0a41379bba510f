// Package app implements the application layer for slink.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/engine/inventory"
	"go.trai.ch/slink/internal/engine/menucache"
	"go.trai.ch/slink/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg       *domain.Config
	inventory *inventory.Inventory
	menus     *menucache.Cache
	resolver  *resolver.Resolver
	overrides ports.OverrideStore
	events    ports.EventSource
	store     ports.TransientStore
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	inv *inventory.Inventory,
	menus *menucache.Cache,
	res *resolver.Resolver,
	overrides ports.OverrideStore,
	events ports.EventSource,
	store ports.TransientStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		cfg:       cfg,
		inventory: inv,
		menus:     menus,
		resolver:  res,
		overrides: overrides,
		events:    events,
		store:     store,
		logger:    logger,
		tracer:    tracer,
	}
}

// ScanOptions control a single scan pass.
type ScanOptions struct {
	// NoCache forces a rebuild of the menu catalog and plugin inventory
	// before resolving.
	NoCache bool

	// Links is the action-link row each plugin starts from, mirroring the
	// links the host would render without slink.
	Links []string
}

// Outcome classifies what the resolver did for one plugin.
type Outcome uint8

const (
	// OutcomeInjected means at least one settings link was added.
	OutcomeInjected Outcome = iota
	// OutcomeAlreadyPresent means the row already carried a settings link.
	OutcomeAlreadyPresent
	// OutcomeMissing means no settings page could be found.
	OutcomeMissing
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInjected:
		return "injected"
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the outcome as its name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// ScanResult is the per-plugin outcome of a scan.
type ScanResult struct {
	Basename string   `json:"basename"`
	Name     string   `json:"name,omitempty"`
	Outcome  Outcome  `json:"outcome"`
	Links    []string `json:"links,omitempty"`
}

// ScanReport is what a full scan pass produced.
type ScanReport struct {
	Results []ScanResult `json:"results"`
	Missing []string     `json:"missing,omitempty"`
	Notice  string       `json:"notice,omitempty"`
}

// Scan resolves settings links for every installed plugin and reports the
// per-plugin outcome. Plugins are processed in basename order so repeated
// scans of the same site produce identical reports.
func (a *App) Scan(ctx context.Context, opts ScanOptions) (*ScanReport, error) {
	if opts.NoCache {
		if err := a.InvalidateCaches(ctx); err != nil {
			return nil, zerr.Wrap(err, "invalidating caches")
		}
	}

	records := a.inventory.Plugins(ctx)
	basenames := slices.Sorted(maps.Keys(records))
	a.tracer.EmitPlan(ctx, basenames)

	req := resolver.NewRequest()
	results := make([]ScanResult, 0, len(basenames))
	for _, basename := range basenames {
		record := records[basename]
		out := a.resolver.FilterLinks(ctx, req, record, opts.Links)

		result := ScanResult{Basename: basename, Name: record.Name}
		if len(out) > len(opts.Links) {
			result.Outcome = OutcomeInjected
			result.Links = out[:len(out)-len(opts.Links)]
		}
		results = append(results, result)
	}

	// Missing must be read before the notice render consumes the report.
	missing := req.Missing()
	missingSet := make(map[string]struct{}, len(missing))
	for _, basename := range missing {
		missingSet[basename] = struct{}{}
	}
	for i := range results {
		if results[i].Outcome == OutcomeInjected {
			continue
		}
		if _, ok := missingSet[results[i].Basename]; ok {
			results[i].Outcome = OutcomeMissing
		} else {
			results[i].Outcome = OutcomeAlreadyPresent
		}
	}

	return &ScanReport{
		Results: results,
		Missing: missing,
		Notice:  req.RenderNotice(),
	}, nil
}

// NewRequest creates the shared per-request state that FilterActionLinks
// calls within one host request hand around.
func (a *App) NewRequest() *resolver.Request {
	return resolver.NewRequest()
}

// FilterActionLinks augments the action-link row of a single plugin, the
// way the host's row filter would invoke slink. Basenames the inventory
// does not know still run the full pipeline with a minimal record, so
// overrides apply to plugins installed mid-request.
func (a *App) FilterActionLinks(ctx context.Context, req *resolver.Request, basename string, links []string) []string {
	record, ok := a.inventory.Plugins(ctx)[basename]
	if !ok {
		record = domain.PluginRecord{Basename: basename}
	}
	return a.resolver.FilterLinks(ctx, req, record, links)
}

// InvalidateCaches drops the cached menu catalog and plugin inventory.
func (a *App) InvalidateCaches(ctx context.Context) error {
	return errors.Join(
		a.menus.Invalidate(ctx),
		a.inventory.Invalidate(ctx),
	)
}

// CacheStatus reports which transient payloads are currently stored.
type CacheStatus struct {
	Backend       string `json:"backend"`
	MenuKey       string `json:"menuKey"`
	MenuCached    bool   `json:"menuCached"`
	PluginKey     string `json:"pluginKey"`
	PluginsCached bool   `json:"pluginsCached"`
}

// CacheStatus inspects the transient store without triggering a rebuild.
func (a *App) CacheStatus(ctx context.Context) (*CacheStatus, error) {
	menuRaw, err := a.store.Get(ctx, a.menus.Key())
	if err != nil {
		return nil, zerr.Wrap(err, "reading menu catalog state")
	}
	pluginRaw, err := a.store.Get(ctx, a.inventory.Key())
	if err != nil {
		return nil, zerr.Wrap(err, "reading plugin inventory state")
	}
	return &CacheStatus{
		Backend:       a.cfg.CacheBackend,
		MenuKey:       a.menus.Key(),
		MenuCached:    menuRaw != nil,
		PluginKey:     a.inventory.Key(),
		PluginsCached: pluginRaw != nil,
	}, nil
}

// SetOverrides replaces the override URLs for one plugin basename with the
// surviving entries of the given comma-separated list. An input whose URLs
// are all rejected removes the basename instead, matching the sanitizer's
// rule that empty entries are never stored. Returns the stored URLs and
// the rejected candidates.
func (a *App) SetOverrides(ctx context.Context, basename, rawURLs string) ([]string, []string, error) {
	stored, err := a.overrides.Load(ctx)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "loading overrides")
	}

	clean, rejected := domain.SanitizeOverrides(map[string]string{basename: rawURLs}, a.cfg.Site)
	urls, ok := clean[basename]
	if ok {
		stored[basename] = urls
	} else {
		delete(stored, basename)
	}

	if err := a.overrides.Save(ctx, stored); err != nil {
		return nil, nil, zerr.Wrap(err, "saving overrides")
	}
	return urls, rejected, nil
}

// RemoveOverride deletes the override entry for a basename. Removing a
// basename that has no entry is not an error.
func (a *App) RemoveOverride(ctx context.Context, basename string) error {
	stored, err := a.overrides.Load(ctx)
	if err != nil {
		return zerr.Wrap(err, "loading overrides")
	}
	if _, ok := stored[basename]; !ok {
		return nil
	}
	delete(stored, basename)
	if err := a.overrides.Save(ctx, stored); err != nil {
		return zerr.Wrap(err, "saving overrides")
	}
	return nil
}

// ListOverrides returns the stored override mapping.
func (a *App) ListOverrides(ctx context.Context) (domain.Overrides, error) {
	stored, err := a.overrides.Load(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "loading overrides")
	}
	return stored, nil
}

// Watch runs the plugin lifecycle event loop until the context is
// cancelled, invalidating the affected caches for every event.
func (a *App) Watch(ctx context.Context) error {
	if err := a.events.Start(ctx, a.cfg.PluginsDir); err != nil {
		return zerr.Wrap(err, "starting plugins watch")
	}
	defer func() {
		_ = a.events.Stop()
	}()

	a.logger.Info("watching " + a.cfg.PluginsDir)
	for event := range a.events.Events() {
		a.logger.Info(event.Kind.String() + " " + event.Basename)
		if err := a.HandleEvent(ctx, event); err != nil {
			a.logger.Error(err)
		}
	}
	return nil
}

// HandleEvent applies a single lifecycle event to the caches. Hosts that
// deliver their own install and upgrade notifications call this directly
// instead of running Watch. Both caches are refreshed even when one fails.
func (a *App) HandleEvent(ctx context.Context, event domain.LifecycleEvent) error {
	menuErr := a.menus.HandleEvent(ctx, event)
	invErr := a.inventory.Invalidate(ctx)
	return errors.Join(menuErr, invErr)
}
