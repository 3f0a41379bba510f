package menureg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/menureg"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/zerr"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_TopLevel(t *testing.T) {
	path := writeExport(t, `
menus:
  - title: "My Plugin"
    slug: "my-plugin"
  - title: "Tools"
    slug: "tools.php"
`)

	reg := menureg.NewRegistry(path)
	items, err := reg.TopLevel()
	require.NoError(t, err)

	assert.Equal(t, []ports.RawMenuItem{
		{Title: "My Plugin", Slug: "my-plugin"},
		{Title: "Tools", Slug: "tools.php"},
	}, items)
}

func TestRegistry_Submenus(t *testing.T) {
	path := writeExport(t, `
menus:
  - title: "My Plugin"
    slug: "my-plugin"
submenus:
  "my-plugin":
    - title: "Child Page"
      slug: "Child_Page"
  "options-general.php":
    - title: "My Settings"
      slug: "my-settings"
`)

	reg := menureg.NewRegistry(path)
	subs, err := reg.Submenus()
	require.NoError(t, err)

	require.Len(t, subs, 2)
	assert.Equal(t, []ports.RawMenuItem{{Title: "Child Page", Slug: "Child_Page"}}, subs["my-plugin"])
	assert.Equal(t, []ports.RawMenuItem{{Title: "My Settings", Slug: "my-settings"}}, subs["options-general.php"])
}

func TestRegistry_EmptyExport(t *testing.T) {
	path := writeExport(t, "")

	reg := menureg.NewRegistry(path)

	items, err := reg.TopLevel()
	require.NoError(t, err)
	assert.Empty(t, items)

	subs, err := reg.Submenus()
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestRegistry_FileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.yaml")

	reg := menureg.NewRegistry(path)
	_, err := reg.TopLevel()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMenusExportUnreadable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T: %v", err, err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestRegistry_MalformedYAML(t *testing.T) {
	path := writeExport(t, "menus: [unterminated\n")

	reg := menureg.NewRegistry(path)
	_, err := reg.Submenus()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMenusExportUnreadable)
}

func TestRegistry_ReReadsFile(t *testing.T) {
	path := writeExport(t, `
menus:
  - title: "First"
    slug: "first"
`)

	reg := menureg.NewRegistry(path)
	items, err := reg.TopLevel()
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, os.WriteFile(path, []byte(`
menus:
  - title: "First"
    slug: "first"
  - title: "Second"
    slug: "second"
`), 0o600))

	items, err = reg.TopLevel()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
