package domain

import "net/url"

// EquivalentURL reports whether two URLs point at the same admin page for
// de-duplication purposes. Absolute URLs match on scheme, host, and path.
// Relative URLs match on path, and when either carries a page query
// parameter both must carry it with the same value. Anything unparseable is
// equivalent to nothing, so a doubtful link is injected rather than silently
// dropped.
func EquivalentURL(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}

	if ua.Host != "" || ub.Host != "" {
		return ua.Host == ub.Host && ua.Scheme == ub.Scheme && ua.Path == ub.Path
	}

	if ua.Path != ub.Path {
		return false
	}

	qa, qb := ua.Query(), ub.Query()
	if !qa.Has("page") && !qb.Has("page") {
		return true
	}
	return qa.Has("page") && qb.Has("page") && qa.Get("page") == qb.Get("page")
}
