package resolver

// PrependLinks exposes the injector for golden tests.
func PrependLinks(links, urls []string, pluginName string) []string {
	return prependLinks(links, urls, pluginName)
}

// StripTags exposes the fragment text extractor for tests.
func StripTags(fragment string) string {
	return stripTags(fragment)
}

// ReportMissing seeds the request report for tests.
func (r *Request) ReportMissing(basenames ...string) {
	for _, b := range basenames {
		r.report.Add(b)
	}
}
