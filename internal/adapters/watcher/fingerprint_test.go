package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/watcher"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
	"go.trai.ch/slink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) ports.Logger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func writeManifest(t *testing.T, root, basename, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(basename))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewFingerprints(t *testing.T) {
	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(t.TempDir(), quietLogger(ctrl))
	require.NotNil(t, prints)
}

func TestFingerprints_Classify_Activation(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	path := writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\n")

	events := prints.Classify([]string{path})
	require.Len(t, events, 1)
	assert.Equal(t, domain.LifecycleEvent{
		Kind:     domain.EventPluginActivated,
		Package:  domain.PackagePlugin,
		Basename: "my-plugin/my-plugin.yaml",
	}, events[0])

	// The baseline advanced, so the same path is now quiet.
	assert.Empty(t, prints.Classify([]string{path}))
}

func TestFingerprints_Classify_Deactivation(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\n")

	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	require.NoError(t, os.Remove(path))

	events := prints.Classify([]string{path})
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventPluginDeactivated, events[0].Kind)
	assert.Equal(t, "my-plugin/my-plugin.yaml", events[0].Basename)

	// A second removal report for the same manifest stays quiet.
	assert.Empty(t, prints.Classify([]string{path}))
}

func TestFingerprints_Classify_Upgrade(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\nversion: \"1.0\"\n")

	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\nversion: \"2.0\"\n")

	events := prints.Classify([]string{path})
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventUpgradeCompleted, events[0].Kind)
	assert.Equal(t, domain.PackagePlugin, events[0].Package)
	assert.Equal(t, "my-plugin/my-plugin.yaml", events[0].Basename)

	// Unchanged content after the upgrade stays quiet.
	assert.Empty(t, prints.Classify([]string{path}))
}

func TestFingerprints_Classify_UnchangedWriteSuppressed(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\n")

	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	// Rewrite the same bytes, as editors and installers routinely do.
	writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\n")

	assert.Empty(t, prints.Classify([]string{path}))
}

func TestFingerprints_Classify_UnknownRemovalSuppressed(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	ghost := filepath.Join(root, "ghost", "ghost.yaml")
	assert.Empty(t, prints.Classify([]string{ghost}))
}

func TestFingerprints_Classify_SingleFilePlugin(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	path := writeManifest(t, root, "hello.yaml", "name: Hello\n")

	events := prints.Classify([]string{path})
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventPluginActivated, events[0].Kind)
	assert.Equal(t, "hello.yaml", events[0].Basename)
}

func TestFingerprints_Classify_IgnoresNonManifests(t *testing.T) {
	root := t.TempDir()
	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	writeManifest(t, root, "my-plugin/readme.txt", "hi")
	writeManifest(t, root, "my-plugin/config.yaml", "key: value\n")
	writeManifest(t, root, "my-plugin/assets/assets.yaml", "deep: true\n")

	paths := []string{
		filepath.Join(root, "my-plugin", "readme.txt"),
		filepath.Join(root, "my-plugin", "config.yaml"),
		filepath.Join(root, "my-plugin", "assets", "assets.yaml"),
		filepath.Join(root, "..", "outside.yaml"),
	}
	assert.Empty(t, prints.Classify(paths))
}

func TestFingerprints_Classify_BatchOrder(t *testing.T) {
	root := t.TempDir()
	removed := writeManifest(t, root, "alpha/alpha.yaml", "name: Alpha\n")
	upgraded := writeManifest(t, root, "beta.yaml", "name: Beta\nversion: \"1.0\"\n")

	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	require.NoError(t, os.Remove(removed))
	writeManifest(t, root, "beta.yaml", "name: Beta\nversion: \"2.0\"\n")
	added := writeManifest(t, root, "gamma/gamma.yaml", "name: Gamma\n")

	// Batch order is path order, no matter how the events arrived.
	events := prints.Classify([]string{added, removed, upgraded})
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventPluginDeactivated, events[0].Kind)
	assert.Equal(t, "alpha/alpha.yaml", events[0].Basename)
	assert.Equal(t, domain.EventUpgradeCompleted, events[1].Kind)
	assert.Equal(t, "beta.yaml", events[1].Basename)
	assert.Equal(t, domain.EventPluginActivated, events[2].Kind)
	assert.Equal(t, "gamma/gamma.yaml", events[2].Basename)
}

func TestFingerprints_Classify_UnreadableManifest(t *testing.T) {
	root := t.TempDir()
	// A directory whose name looks like a manifest cannot be hashed.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bad", "bad.yaml"), 0o750))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "bad/bad.yaml")
	})

	prints := watcher.NewFingerprints(root, log)
	events := prints.Classify([]string{filepath.Join(root, "bad", "bad.yaml")})
	assert.Empty(t, events)
}

func TestFingerprints_Prime_RecordsExistingManifests(t *testing.T) {
	root := t.TempDir()
	dirForm := writeManifest(t, root, "my-plugin/my-plugin.yaml", "name: My Plugin\n")
	fileForm := writeManifest(t, root, "hello.yaml", "name: Hello\n")
	writeManifest(t, root, "my-plugin/other.yaml", "stray: true\n")

	ctrl := gomock.NewController(t)
	prints := watcher.NewFingerprints(root, quietLogger(ctrl))
	prints.Prime()

	// Primed manifests are part of the baseline and stay quiet.
	assert.Empty(t, prints.Classify([]string{dirForm, fileForm}))

	// Removing a primed manifest still registers.
	require.NoError(t, os.Remove(fileForm))
	events := prints.Classify([]string{fileForm})
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventPluginDeactivated, events[0].Kind)
}
