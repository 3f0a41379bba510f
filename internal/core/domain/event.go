package domain

// EventKind classifies host lifecycle notifications.
type EventKind uint8

const (
	// EventPluginActivated fires when a plugin is switched on.
	EventPluginActivated EventKind = iota
	// EventPluginDeactivated fires when a plugin is switched off or removed.
	EventPluginDeactivated
	// EventUpgradeCompleted fires when an install or update process finishes.
	EventUpgradeCompleted
)

// String returns the kind's name for logs.
func (k EventKind) String() string {
	switch k {
	case EventPluginActivated:
		return "plugin_activated"
	case EventPluginDeactivated:
		return "plugin_deactivated"
	case EventUpgradeCompleted:
		return "upgrade_completed"
	default:
		return "unknown"
	}
}

// PackageType names the package family an upgrade touched.
type PackageType string

// Package families carried on upgrade events.
const (
	PackagePlugin PackageType = "plugin"
	PackageTheme  PackageType = "theme"
	PackageOther  PackageType = "other"
)

// LifecycleEvent is a host notification that may affect cache freshness.
// Basename carries the plugin basename when the source knows it.
type LifecycleEvent struct {
	Kind     EventKind
	Package  PackageType
	Basename string
}

// InvalidatesMenuCache reports whether the menu slug cache must be flushed
// in response to the event. Activation and deactivation always invalidate;
// upgrades count only for plugin and theme packages.
func (e LifecycleEvent) InvalidatesMenuCache() bool {
	switch e.Kind {
	case EventPluginActivated, EventPluginDeactivated:
		return true
	case EventUpgradeCompleted:
		return e.Package == PackagePlugin || e.Package == PackageTheme
	default:
		return false
	}
}
