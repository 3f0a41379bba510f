// Package resolver implements the settings-link decision pipeline: given a
// plugin and its current action links, it finds the plugin's settings page
// through a prioritized chain of detectors and injects the matching links.
package resolver

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

// DefaultSynonyms are matched case-insensitively against the visible text of
// existing action links to detect a settings link the plugin already ships.
var DefaultSynonyms = []string{
	"settings",
	"configure",
	"options",
	"manage",
	"setup",
	"preferences",
	"admin",
}

var hrefPattern = regexp.MustCompile(`href\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Resolver decides per plugin whether to add settings links. It never fails:
// detector errors are debug-logged and treated as "found nothing".
type Resolver struct {
	detectors []Detector
	synonyms  []string
	log       ports.Logger
	tracer    ports.Tracer
}

// New creates a Resolver. Detectors run in the given order. Extra synonyms
// extend DefaultSynonyms.
func New(detectors []Detector, extraSynonyms []string, log ports.Logger, tracer ports.Tracer) *Resolver {
	synonyms := slices.Clone(DefaultSynonyms)
	for _, s := range extraSynonyms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && !slices.Contains(synonyms, s) {
			synonyms = append(synonyms, s)
		}
	}
	return &Resolver{
		detectors: detectors,
		synonyms:  synonyms,
		log:       log,
		tracer:    tracer,
	}
}

// FilterLinks is the action-link filter boundary. It returns the possibly
// augmented link list for the plugin, unchanged when a settings link already
// exists, and records the plugin on the request report when nothing could be
// resolved.
func (r *Resolver) FilterLinks(ctx context.Context, req *Request, plugin domain.PluginRecord, links []string) []string {
	ctx, span := r.tracer.Start(ctx, "resolve "+plugin.Basename)
	defer span.End()

	if r.hasSettingsLink(links) {
		span.SetAttribute("outcome", "already_present")
		r.log.Debug(plugin.Basename + " already has a settings link")
		return links
	}

	existing := ExtractHrefs(links)
	for _, det := range r.detectors {
		urls, err := det.Find(ctx, plugin.Basename)
		if err != nil {
			span.RecordError(err)
			r.log.Debug(det.Name() + " detector failed for " + plugin.Basename + ": " + err.Error())
			continue
		}
		urls = dropEquivalent(urls, existing)
		if len(urls) == 0 {
			continue
		}
		span.SetAttribute("outcome", det.Name())
		r.log.Debug(plugin.Basename + " resolved by " + det.Name() + " detector")
		return prependLinks(links, urls, plugin.Name)
	}

	span.SetAttribute("outcome", "missing")
	req.report.Add(plugin.Basename)
	return links
}

// hasSettingsLink reports whether any fragment's visible text contains a
// settings synonym.
func (r *Resolver) hasSettingsLink(links []string) bool {
	for _, fragment := range links {
		text := strings.ToLower(stripTags(fragment))
		for _, syn := range r.synonyms {
			if strings.Contains(text, syn) {
				return true
			}
		}
	}
	return false
}

// dropEquivalent removes URLs equivalent to an existing link or to an
// earlier URL in the same batch, preserving discovery order.
func dropEquivalent(urls, existing []string) []string {
	var kept []string
	for _, u := range urls {
		if u == "" {
			continue
		}
		equivalent := func(have string) bool { return domain.EquivalentURL(u, have) }
		if slices.ContainsFunc(existing, equivalent) || slices.ContainsFunc(kept, equivalent) {
			continue
		}
		kept = append(kept, u)
	}
	return kept
}

// ExtractHrefs pulls the href targets out of link fragments.
func ExtractHrefs(links []string) []string {
	var hrefs []string
	for _, fragment := range links {
		for _, match := range hrefPattern.FindAllStringSubmatch(fragment, -1) {
			if match[1] != "" {
				hrefs = append(hrefs, match[1])
			} else if match[2] != "" {
				hrefs = append(hrefs, match[2])
			}
		}
	}
	return hrefs
}

// stripTags removes markup so synonym matching sees only visible text.
// Action-link fragments are single anchors, not arbitrary HTML, so a linear
// scan is all this needs.
func stripTags(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))
	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
