package domain

import (
	"net/url"
	"strings"
)

// MenuEntry is one registered admin-menu or submenu item, flattened for
// caching. URL is computed once at cache-build time from Slug and Parent.
type MenuEntry struct {
	Slug   string `json:"slug"`
	URL    string `json:"url"`
	Parent string `json:"parent,omitempty"`
}

// Catalog is the ordered slug to URL mapping served by the menu cache.
// It is rebuilt as a whole; individual entries are never mutated.
type Catalog []MenuEntry

// URLsFor returns the URLs of all entries whose slug equals one of the
// candidates, in catalog order, deduplicated.
func (c Catalog) URLsFor(candidates []string) []string {
	if len(c) == 0 || len(candidates) == 0 {
		return nil
	}

	want := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		want[cand] = struct{}{}
	}

	var urls []string
	seen := make(map[string]struct{})
	for _, entry := range c {
		if _, ok := want[entry.Slug]; !ok {
			continue
		}
		if _, dup := seen[entry.URL]; dup {
			continue
		}
		seen[entry.URL] = struct{}{}
		urls = append(urls, entry.URL)
	}
	return urls
}

// BuildAdminURL computes the admin URL for a registered menu slug.
// Slugs naming a ".php" admin file are served directly; entries under such a
// file keep the parent as the script and pass the slug as the page argument;
// everything else goes through admin.php.
func BuildAdminURL(slug, parent string) string {
	if parent == "" {
		if strings.Contains(slug, ".php") {
			return slug
		}
		return "admin.php?page=" + url.QueryEscape(slug)
	}
	if strings.Contains(parent, ".php") {
		return parent + "?page=" + url.QueryEscape(slug)
	}
	return "admin.php?page=" + url.QueryEscape(slug)
}
