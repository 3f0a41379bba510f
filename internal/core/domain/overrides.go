package domain

import (
	"regexp"
	"slices"
	"strings"
)

// Overrides maps plugin basenames to their manually configured settings
// URLs. Every stored URL passed validation at write time; basenames with no
// valid URL are never stored.
type Overrides map[string][]string

// adminPageLink is the accepted relative admin-link shape.
var adminPageLink = regexp.MustCompile(`^admin\.php\?page=[A-Za-z0-9_-]+$`)

// SanitizeOverrides validates raw admin-submitted override input. Each value
// is a comma-separated URL list; only same-host absolute URLs and relative
// admin.php?page=<token> links survive. Basenames with zero surviving URLs
// are omitted from the result. The second return value lists every rejected
// candidate as "basename: url" so callers can log them.
func SanitizeOverrides(raw map[string]string, site Site) (Overrides, []string) {
	clean := make(Overrides, len(raw))
	var rejected []string

	basenames := make([]string, 0, len(raw))
	for basename := range raw {
		basenames = append(basenames, basename)
	}
	slices.Sort(basenames)

	for _, basename := range basenames {
		var urls []string
		for _, cand := range strings.Split(raw[basename], ",") {
			cand = strings.TrimSpace(cand)
			if cand == "" {
				continue
			}
			if ValidOverrideURL(cand, site) {
				urls = append(urls, cand)
			} else {
				rejected = append(rejected, basename+": "+cand)
			}
		}
		if len(urls) > 0 {
			clean[basename] = urls
		}
	}
	return clean, rejected
}

// ValidOverrideURL reports whether a single override candidate is
// acceptable: an absolute URL on the site's own host, or a bare
// admin.php?page=<token> link whose token holds only letters, digits,
// hyphens, and underscores.
func ValidOverrideURL(cand string, site Site) bool {
	if adminPageLink.MatchString(cand) {
		return true
	}
	return site.SameHost(cand)
}
