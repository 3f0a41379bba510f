package resolver

import (
	"html/template"
	"strings"

	"go.trai.ch/slink/internal/core/domain"
)

// Request carries the state of one pipeline invocation. Hosts construct one
// per request and pass it to every FilterLinks call; it is never shared
// across requests and nothing in it is persisted.
type Request struct {
	report *domain.Report
}

// NewRequest creates an empty Request.
func NewRequest() *Request {
	return &Request{report: domain.NewReport()}
}

// Missing returns the basenames no settings URL was found for so far.
func (r *Request) Missing() []string {
	return r.report.Missing()
}

var noticeTmpl = template.Must(template.New("missing_notice").Parse(
	`<div class="notice notice-info is-dismissible"><p>No settings page found for: {{range $i, $b := .}}{{if $i}}, {{end}}<code>{{$b}}</code>{{end}}</p></div>`))

// RenderNotice renders the aggregated missing-settings notice and consumes
// the backing set, so a second call within the same request returns the
// empty string. An empty set renders nothing.
func (r *Request) RenderNotice() string {
	missing := r.report.Consume()
	if len(missing) == 0 {
		return ""
	}

	var b strings.Builder
	if err := noticeTmpl.Execute(&b, missing); err != nil {
		return ""
	}
	return b.String()
}
