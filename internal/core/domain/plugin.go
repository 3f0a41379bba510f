package domain

import (
	"path"
	"strings"
)

// PluginRecord describes one installed plugin as reported by the host's
// plugin registry.
type PluginRecord struct {
	Basename    string `json:"basename"`
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	Network     bool   `json:"network,omitempty"`
}

// SplitBasename splits a plugin basename like "my-plugin/my-plugin.yaml"
// into the plugin's directory name and the main file's stem without
// extension. Single-file plugins have an empty directory.
func SplitBasename(basename string) (dir, stem string) {
	basename = strings.Trim(basename, "/")
	if basename == "" {
		return "", ""
	}
	if i := strings.IndexByte(basename, '/'); i >= 0 {
		dir = basename[:i]
	}
	file := path.Base(basename)
	stem = strings.TrimSuffix(file, path.Ext(file))
	return dir, stem
}
