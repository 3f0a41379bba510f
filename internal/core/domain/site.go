package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Site identifies the installation the resolver serves. ID is the site's
// position in a network install; zero outside networks.
type Site struct {
	URL       string
	AdminBase string
	ID        int
}

// AdminURL resolves an admin-relative link like "admin.php?page=x" to its
// absolute form beneath the site's admin base.
func (s Site) AdminURL(rel string) string {
	base := strings.TrimRight(s.URL, "/")
	if s.AdminBase != "" {
		base += "/" + strings.Trim(s.AdminBase, "/")
	}
	return base + "/" + strings.TrimLeft(rel, "/")
}

// SameHost reports whether raw is an absolute URL on the site's own host.
func (s Site) SameHost(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	self, err := url.Parse(s.URL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, self.Host)
}

// ScopedKey appends the site scope to a cache key so network installs keep
// per-site cache entries apart.
func (s Site) ScopedKey(base string) string {
	if s.ID > 0 {
		return base + "_site_" + strconv.Itoa(s.ID)
	}
	return base
}
