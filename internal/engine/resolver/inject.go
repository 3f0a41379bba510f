package resolver

import (
	"html/template"
	"strconv"
	"strings"
)

type settingsLink struct {
	URL   string
	Label string
	Aria  string
}

var linkTmpl = template.Must(template.New("settings_link").Parse(
	`<a href="{{.URL}}"{{with .Aria}} aria-label="{{.}}"{{end}}>{{.Label}}</a>`))

// prependLinks renders the resolved URLs and puts them at the front of the
// action-link list. One URL becomes a single Settings anchor; several become
// one grouped entry with numbered anchors in discovery order. A render
// failure leaves the list unchanged.
func prependLinks(links, urls []string, pluginName string) []string {
	if len(urls) == 0 {
		return links
	}

	if len(urls) == 1 {
		aria := ""
		if pluginName != "" {
			aria = "Settings for " + pluginName
		}
		fragment, err := renderLink(settingsLink{URL: urls[0], Label: "Settings", Aria: aria})
		if err != nil {
			return links
		}
		return append([]string{fragment}, links...)
	}

	var b strings.Builder
	b.WriteString(`<span class="slink-settings-group">`)
	for n, u := range urls {
		if n > 0 {
			b.WriteString(" | ")
		}
		fragment, err := renderLink(settingsLink{URL: u, Label: "Settings " + strconv.Itoa(n+1)})
		if err != nil {
			return links
		}
		b.WriteString(fragment)
	}
	b.WriteString(`</span>`)
	return append([]string{b.String()}, links...)
}

func renderLink(link settingsLink) (string, error) {
	var b strings.Builder
	if err := linkTmpl.Execute(&b, link); err != nil {
		return "", err
	}
	return b.String(), nil
}
