package menucache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/transient"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/core/ports/mocks"
	"go.trai.ch/slink/internal/engine/menucache"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestCache_Load_SecondLoadSkipsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return([]ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
	}, nil).Times(1)
	registry.EXPECT().Submenus().Return(nil, nil).Times(1)

	store := transient.NewMemory()
	cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
	ctx := context.Background()

	first, err := cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	stored, err := store.Get(ctx, cache.Key())
	require.NoError(t, err)
	require.NotNil(t, stored)

	second, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	storedAgain, err := store.Get(ctx, cache.Key())
	require.NoError(t, err)
	assert.Equal(t, stored, storedAgain, "a second load must not rewrite the catalog")
}

func TestCache_TwoInvalidationsOneRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return([]ports.RawMenuItem{
		{Title: "Alpha", Slug: "alpha"},
	}, nil).Times(1)
	registry.EXPECT().Submenus().Return(nil, nil).Times(1)

	store := transient.NewMemory()
	cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
	ctx := context.Background()

	activated := domain.LifecycleEvent{Kind: domain.EventPluginActivated}
	require.NoError(t, cache.HandleEvent(ctx, activated))
	require.NoError(t, cache.HandleEvent(ctx, activated))

	catalog, err := cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	again, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, again)
}

func TestCache_Load_EmptyBuildNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return(nil, nil).Times(2)
	registry.EXPECT().Submenus().Return(nil, nil).Times(2)

	store := transient.NewMemory()
	cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
	ctx := context.Background()

	catalog, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog)

	stored, err := store.Get(ctx, cache.Key())
	require.NoError(t, err)
	assert.Nil(t, stored, "an empty build must not mask a later successful one")

	catalog, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCache_Load_MalformedPayloadRebuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return([]ports.RawMenuItem{
		{Title: "Beta", Slug: "beta"},
	}, nil).Times(1)
	registry.EXPECT().Submenus().Return(nil, nil).Times(1)

	store := transient.NewMemory()
	cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, cache.Key(), []byte("{not json"), time.Hour))

	catalog, err := cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "beta", catalog[0].Slug)

	stored, err := store.Get(ctx, cache.Key())
	require.NoError(t, err)
	var decoded domain.Catalog
	require.NoError(t, json.Unmarshal(stored, &decoded))
	assert.Equal(t, catalog, decoded)
}

func TestCache_Rebuild_CatalogShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	registry.EXPECT().TopLevel().Return([]ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
		{Title: "Tools", Slug: "tools.php"},
		{Title: "Separator", Slug: ""},
	}, nil).Times(1)
	registry.EXPECT().Submenus().Return(map[string][]ports.RawMenuItem{
		"my-plugin":           {{Title: "Child", Slug: "Child_Page"}},
		"options-general.php": {{Title: "My Settings", Slug: "my-settings"}},
	}, nil).Times(1)

	store := transient.NewMemory()
	cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)

	catalog, err := cache.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Catalog{
		{Slug: "my-plugin", URL: "admin.php?page=my-plugin"},
		{Slug: "tools-php", URL: "tools.php"},
		{Slug: "child_page", URL: "admin.php?page=Child_Page", Parent: "my-plugin"},
		{Slug: "my-settings", URL: "options-general.php?page=my-settings", Parent: "options-general.php"},
	}, catalog)
}

func TestCache_HandleEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       domain.LifecycleEvent
		invalidates bool
	}{
		{
			name:        "plugin activated",
			event:       domain.LifecycleEvent{Kind: domain.EventPluginActivated},
			invalidates: true,
		},
		{
			name:        "plugin deactivated",
			event:       domain.LifecycleEvent{Kind: domain.EventPluginDeactivated},
			invalidates: true,
		},
		{
			name:        "theme upgrade",
			event:       domain.LifecycleEvent{Kind: domain.EventUpgradeCompleted, Package: domain.PackageTheme},
			invalidates: true,
		},
		{
			name:        "unrelated upgrade",
			event:       domain.LifecycleEvent{Kind: domain.EventUpgradeCompleted, Package: domain.PackageOther},
			invalidates: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			registry := mocks.NewMockMenuRegistry(ctrl)
			store := transient.NewMemory()
			cache := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, cache.Key(), []byte(`[]`), time.Hour))
			require.NoError(t, cache.HandleEvent(ctx, tt.event))

			stored, err := store.Get(ctx, cache.Key())
			require.NoError(t, err)
			if tt.invalidates {
				assert.Nil(t, stored)
			} else {
				assert.NotNil(t, stored)
			}
		})
	}
}

func TestCache_Key_SiteScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockMenuRegistry(ctrl)
	store := transient.NewMemory()

	single := menucache.New(store, registry, quietLogger(ctrl), domain.Site{}, 0)
	assert.Equal(t, "slink:menu_slugs", single.Key())

	network := menucache.New(store, registry, quietLogger(ctrl), domain.Site{ID: 7}, 0)
	assert.Equal(t, "slink:menu_slugs_site_7", network.Key())
}
