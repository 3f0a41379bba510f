package domain

import "slices"

// Report accumulates the plugins that resolved to no settings URL during a
// single request. It is request-local state; construct one per pipeline
// invocation and discard it afterwards. It is never persisted.
type Report struct {
	missing []string
	seen    map[string]struct{}
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{seen: make(map[string]struct{})}
}

// Add records a plugin basename as missing. Duplicates are ignored; first
// insertion order is preserved.
func (r *Report) Add(basename string) {
	if _, ok := r.seen[basename]; ok {
		return
	}
	r.seen[basename] = struct{}{}
	r.missing = append(r.missing, basename)
}

// Missing returns a copy of the recorded basenames in insertion order.
func (r *Report) Missing() []string {
	return slices.Clone(r.missing)
}

// Len reports how many plugins are currently recorded.
func (r *Report) Len() int {
	return len(r.missing)
}

// Consume returns the recorded basenames and clears the report, so a notice
// built from it renders at most once per request.
func (r *Report) Consume() []string {
	out := r.missing
	r.missing = nil
	r.seen = make(map[string]struct{})
	return out
}
