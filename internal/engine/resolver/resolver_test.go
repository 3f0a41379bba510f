package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/telemetry"
	"go.trai.ch/slink/internal/adapters/transient"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/core/ports/mocks"
	"go.trai.ch/slink/internal/engine/menucache"
	"go.trai.ch/slink/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

var testSite = domain.Site{URL: "https://example.com", AdminBase: "admin"}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func menuCacheWith(ctrl *gomock.Controller, top []ports.RawMenuItem, subs map[string][]ports.RawMenuItem) *menucache.Cache {
	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return(top, nil).AnyTimes()
	registry.EXPECT().Submenus().Return(subs, nil).AnyTimes()
	return menucache.New(transient.NewMemory(), registry, quietLogger(ctrl), domain.Site{}, 0)
}

func overridesWith(ctrl *gomock.Controller, stored domain.Overrides) *mocks.MockOverrideStore {
	store := mocks.NewMockOverrideStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(stored, nil).AnyTimes()
	return store
}

func newResolver(ctrl *gomock.Controller, store ports.OverrideStore, cache *menucache.Cache, synonyms []string) *resolver.Resolver {
	detectors := []resolver.Detector{
		resolver.NewOverrideDetector(store, testSite),
		resolver.NewMenuDetector(cache, nil),
	}
	return resolver.New(detectors, synonyms, quietLogger(ctrl), telemetry.NewNoOpTracer())
}

func TestResolver_ExistingSettingsLinkShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Neither collaborator carries expectations; any call would fail the test.
	store := mocks.NewMockOverrideStore(ctrl)
	registry := mocks.NewMockMenuRegistry(ctrl)
	cache := menucache.New(transient.NewMemory(), registry, quietLogger(ctrl), domain.Site{}, 0)
	r := newResolver(ctrl, store, cache, nil)

	req := resolver.NewRequest()
	links := []string{
		`<a href="plugins.php?action=deactivate">Deactivate</a>`,
		`<a href="admin.php?page=my-plugin">Settings</a>`,
	}

	got := r.FilterLinks(context.Background(), req, domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, links)
	assert.Equal(t, links, got)
	assert.Empty(t, req.Missing())
}

func TestResolver_SynonymMatchIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockOverrideStore(ctrl)
	registry := mocks.NewMockMenuRegistry(ctrl)
	cache := menucache.New(transient.NewMemory(), registry, quietLogger(ctrl), domain.Site{}, 0)
	r := newResolver(ctrl, store, cache, nil)

	links := []string{`<a href="x.php">CONFIGURE</a>`}
	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "a/a.yaml"}, links)
	assert.Equal(t, links, got)
}

func TestResolver_ExtraSynonyms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockOverrideStore(ctrl)
	registry := mocks.NewMockMenuRegistry(ctrl)
	cache := menucache.New(transient.NewMemory(), registry, quietLogger(ctrl), domain.Site{}, 0)
	r := newResolver(ctrl, store, cache, []string{"Einstellungen"})

	links := []string{`<a href="x.php">Einstellungen</a>`}
	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "a/a.yaml"}, links)
	assert.Equal(t, links, got)
}

func TestResolver_OverridePreemptsAutoDiscovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The menu registry matches the plugin too, but must never be walked.
	registry := mocks.NewMockMenuRegistry(ctrl)
	cache := menucache.New(transient.NewMemory(), registry, quietLogger(ctrl), domain.Site{}, 0)
	store := overridesWith(ctrl, domain.Overrides{
		"my-plugin/my-plugin.yaml": {"admin.php?page=custom-settings"},
	})
	r := newResolver(ctrl, store, cache, nil)

	req := resolver.NewRequest()
	got := r.FilterLinks(context.Background(), req, domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, nil)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "https://example.com/admin/admin.php?page=custom-settings")
	assert.NotContains(t, got[0], "page=my-plugin")
	assert.Empty(t, req.Missing())
}

func TestResolver_AutoDiscoveryMatchesCandidateSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, nil)
	store := overridesWith(ctrl, nil)
	r := newResolver(ctrl, store, cache, nil)

	req := resolver.NewRequest()
	links := []string{`<a href="plugins.php?action=deactivate">Deactivate</a>`}
	got := r.FilterLinks(context.Background(), req, domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, links)

	require.Len(t, got, 2)
	assert.Equal(t, `<a href="admin.php?page=my-plugin">Settings</a>`, got[0])
	assert.Equal(t, links[0], got[1])
	assert.Empty(t, req.Missing())
}

func TestResolver_InjectedLinkCarriesPluginName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, nil)
	store := overridesWith(ctrl, nil)
	r := newResolver(ctrl, store, cache, nil)

	record := domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml", Name: "My Plugin"}
	got := r.FilterLinks(context.Background(), resolver.NewRequest(), record, nil)

	require.Len(t, got, 1)
	assert.Equal(t, `<a href="admin.php?page=my-plugin" aria-label="Settings for My Plugin">Settings</a>`, got[0])
}

func TestResolver_MultipleMatchesGrouped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, map[string][]ports.RawMenuItem{
		"options-general.php": {{Title: "My Plugin Settings", Slug: "my-plugin-settings"}},
	})
	store := overridesWith(ctrl, nil)
	r := newResolver(ctrl, store, cache, nil)

	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, nil)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], `<span class="slink-settings-group">`)
	assert.Contains(t, got[0], ">Settings 1</a>")
	assert.Contains(t, got[0], ">Settings 2</a>")
	assert.Contains(t, got[0], "admin.php?page=my-plugin")
	assert.Contains(t, got[0], "options-general.php?page=my-plugin-settings")
}

func TestResolver_SkipsURLEquivalentToExistingLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, nil)
	store := overridesWith(ctrl, nil)
	r := newResolver(ctrl, store, cache, nil)

	req := resolver.NewRequest()
	links := []string{`<a href="admin.php?page=my-plugin">Open</a>`}
	got := r.FilterLinks(context.Background(), req, domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, links)

	assert.Equal(t, links, got, "an equivalent URL must not be injected twice")
	assert.Equal(t, []string{"my-plugin/my-plugin.yaml"}, req.Missing())
}

func TestResolver_DuplicateOverridesFallThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Every override duplicates an existing link, so auto-discovery still runs.
	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "Other", Slug: "my-plugin-settings"},
	}, nil)
	store := overridesWith(ctrl, domain.Overrides{
		"my-plugin/my-plugin.yaml": {"admin.php?page=taken"},
	})
	r := newResolver(ctrl, store, cache, nil)

	links := []string{`<a href="https://example.com/admin/admin.php?page=taken">Open</a>`}
	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, links)

	require.Len(t, got, 2)
	assert.Equal(t, `<a href="admin.php?page=my-plugin-settings">Settings</a>`, got[0])
}

func TestResolver_DetectorErrorDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockOverrideStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrPluginNotFound).AnyTimes()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, nil)
	r := newResolver(ctrl, store, cache, nil)

	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "my-plugin/my-plugin.yaml"}, nil)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "admin.php?page=my-plugin")
}

func TestResolver_UnresolvedPluginsAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "Unrelated", Slug: "unrelated"},
	}, nil)
	store := overridesWith(ctrl, nil)
	r := newResolver(ctrl, store, cache, nil)

	req := resolver.NewRequest()
	ctx := context.Background()
	for _, basename := range []string{"a/a.yaml", "b/b.yaml", "c/c.yaml"} {
		got := r.FilterLinks(ctx, req, domain.PluginRecord{Basename: basename}, nil)
		assert.Empty(t, got)
	}

	assert.Equal(t, []string{"a/a.yaml", "b/b.yaml", "c/c.yaml"}, req.Missing())

	notice := req.RenderNotice()
	assert.Contains(t, notice, "a/a.yaml")
	assert.Contains(t, notice, "b/b.yaml")
	assert.Contains(t, notice, "c/c.yaml")
	assert.Empty(t, req.RenderNotice(), "the notice renders once per request")
	assert.Empty(t, req.Missing())
}

func TestResolver_NoOverrideFallsThroughToAutoDiscovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A rejected override is never stored, so the store holds nothing for
	// the plugin and discovery proceeds.
	sanitized, _ := domain.SanitizeOverrides(map[string]string{
		"foo/foo.yaml": "http://evil.example.com/x",
	}, testSite)
	require.Empty(t, sanitized)

	cache := menuCacheWith(ctrl, []ports.RawMenuItem{
		{Title: "Foo", Slug: "foo"},
	}, nil)
	store := overridesWith(ctrl, sanitized)
	r := newResolver(ctrl, store, cache, nil)

	got := r.FilterLinks(context.Background(), resolver.NewRequest(), domain.PluginRecord{Basename: "foo/foo.yaml"}, nil)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "admin.php?page=foo")
	assert.NotContains(t, got[0], "evil.example.com")
}
