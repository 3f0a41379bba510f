// Package config provides the configuration loader for slink.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when slink.yaml leaves fields unset.
const (
	DefaultAdminBase   = "admin"
	DefaultPluginsDir  = "plugins"
	DefaultMenusExport = "menus.yaml"

	defaultOverridesPath = ".slink/overrides.db"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load locates slink.yaml walking upward from cwd and returns the resolved
// configuration. Relative paths in the file resolve against the file's own
// directory, so the CLI behaves the same from any subdirectory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads and validates a single configuration file.
func LoadFile(configPath string) (*domain.Config, error) {
	var file Slinkfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}
	return resolve(&file, filepath.Dir(configPath))
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolve(file *Slinkfile, configDir string) (*domain.Config, error) {
	site := domain.Site{
		URL:       file.Site.URL,
		AdminBase: file.Site.AdminBase,
		ID:        file.Site.ID,
	}
	if site.AdminBase == "" {
		site.AdminBase = DefaultAdminBase
	}
	if err := validateSite(site); err != nil {
		return nil, err
	}

	backend := file.Cache.Backend
	if backend == "" {
		backend = domain.CacheBackendMemory
	}
	if backend != domain.CacheBackendMemory && backend != domain.CacheBackendRedis {
		return nil, zerr.With(domain.ErrInvalidCacheBackend, "backend", backend)
	}

	menuTTL, err := parseTTL(file.Cache.MenuTTL)
	if err != nil {
		return nil, zerr.With(err, "field", "cache.menuTTL")
	}
	pluginTTL, err := parseTTL(file.Cache.PluginTTL)
	if err != nil {
		return nil, zerr.With(err, "field", "cache.pluginTTL")
	}

	return &domain.Config{
		Site:         site,
		PluginsDir:   resolvePath(configDir, file.Plugins, DefaultPluginsDir),
		MenusExport:  resolvePath(configDir, file.Menus, DefaultMenusExport),
		CacheBackend: backend,
		Redis: domain.RedisSettings{
			Address:  file.Cache.Redis.Address,
			Password: file.Cache.Redis.Password,
			DB:       file.Cache.Redis.DB,
			Prefix:   file.Cache.Redis.Prefix,
		},
		MenuTTL:       menuTTL,
		PluginTTL:     pluginTTL,
		OverridesPath: resolvePath(configDir, file.Overrides, defaultOverridesPath),
		NetworkActive: file.NetworkActive,
		SettingsTerms: file.SettingsTerms,
		LinkSynonyms:  file.LinkSynonyms,
		Verbose:       file.Verbose,
	}, nil
}

func validateSite(site domain.Site) error {
	if site.URL == "" {
		return zerr.With(domain.ErrInvalidSiteURL, "url", site.URL)
	}
	u, err := url.Parse(site.URL)
	if err != nil || u.Host == "" {
		return zerr.With(domain.ErrInvalidSiteURL, "url", site.URL)
	}
	if site.ID < 0 {
		return zerr.With(domain.ErrInvalidSiteID, "id", site.ID)
	}
	return nil
}

// parseTTL returns zero for an unset value, letting the caches fall back to
// their built-in defaults.
func parseTTL(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.Wrap(err, "invalid cache ttl")
	}
	return d, nil
}

func resolvePath(configDir, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
