package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no slink.yaml exists between the
	// working directory and the filesystem root.
	ErrConfigNotFound = zerr.New("configuration not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrInvalidSiteURL is returned when the configured site URL is missing or has no host.
	ErrInvalidSiteURL = zerr.New("invalid site url")

	// ErrInvalidSiteID is returned when the configured site ID is negative.
	ErrInvalidSiteID = zerr.New("invalid site id")

	// ErrInvalidCacheBackend is returned when the configured cache backend is unknown.
	ErrInvalidCacheBackend = zerr.New("invalid cache backend")

	// ErrCachePayload is returned when a stored cache entry cannot be decoded.
	ErrCachePayload = zerr.New("malformed cache payload")

	// ErrMenusExportUnreadable is returned when the menus export file cannot be read.
	ErrMenusExportUnreadable = zerr.New("menus export unreadable")

	// ErrManifestUnreadable is returned when a plugin manifest cannot be read or parsed.
	ErrManifestUnreadable = zerr.New("plugin manifest unreadable")

	// ErrPluginNotFound is returned when a basename does not resolve to an installed plugin.
	ErrPluginNotFound = zerr.New("plugin not found")
)
