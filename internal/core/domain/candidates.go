package domain

import (
	"slices"
	"strings"
)

// settingsTerms are the suffixes tried when deriving settings-page slugs
// from a plugin name. The list mixes English with the spellings most common
// in localized admin panels.
var settingsTerms = []string{
	"settings",
	"options",
	"preferences",
	"configuration",
	"config",
	"setup",
	"admin",
	"einstellungen",
	"opciones",
	"ajustes",
	"impostazioni",
	"opzioni",
	"instellingen",
	"parametres",
	"reglages",
	"installningar",
}

// Candidates derives the slugs a plugin with the given directory name and
// file stem might have registered its settings page under. Both separators
// are tried for every base, every settings term is appended with both
// separators, and each variant is sanitized. The result is deduplicated and
// sorted; candidates carry no priority among themselves.
func Candidates(dir, stem string, extra ...string) []string {
	terms := settingsTerms
	if len(extra) > 0 {
		terms = append(slices.Clone(settingsTerms), extra...)
	}

	seen := make(map[string]struct{})
	add := func(raw string) {
		if slug := SanitizeSlug(raw); slug != "" {
			seen[slug] = struct{}{}
		}
	}

	for _, base := range []string{dir, stem} {
		if base == "" {
			continue
		}
		for _, b := range []string{base, swapSeparators(base)} {
			add(b)
			for _, term := range terms {
				add(b + "-" + term)
				add(b + "_" + term)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for slug := range seen {
		out = append(out, slug)
	}
	slices.Sort(out)
	return out
}

// swapSeparators exchanges hyphens and underscores so both spellings of a
// plugin name are tried against the menu registry.
func swapSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-':
			return '_'
		case '_':
			return '-'
		}
		return r
	}, s)
}
