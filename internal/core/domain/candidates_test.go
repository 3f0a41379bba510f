package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/core/domain"
)

func TestCandidates_CoversCommonSpellings(t *testing.T) {
	dir, stem := domain.SplitBasename("my-plugin/my-plugin.yaml")
	got := domain.Candidates(dir, stem)

	for _, want := range []string{
		"my-plugin",
		"my_plugin",
		"my-plugin-settings",
		"my-plugin_settings",
	} {
		assert.Contains(t, got, want)
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name        string
		dir         string
		stem        string
		extra       []string
		contains    []string
		notContains []string
	}{
		{
			name: "dir and stem differ",
			dir:  "acme-forms",
			stem: "forms",
			contains: []string{
				"acme-forms",
				"acme_forms",
				"forms",
				"forms-settings",
				"acme-forms-options",
			},
		},
		{
			name:     "single file plugin has no dir",
			dir:      "",
			stem:     "hello",
			contains: []string{"hello", "hello-settings", "hello_settings"},
		},
		{
			name:     "swapped base also gets suffixes",
			dir:      "my_plugin",
			stem:     "main",
			contains: []string{"my_plugin", "my-plugin", "my-plugin-settings", "my_plugin_settings"},
		},
		{
			name:     "variants are sanitized",
			dir:      "Émile Plugin",
			stem:     "émile",
			contains: []string{"emile-plugin", "emile", "emile-settings"},
			notContains: []string{
				"Émile Plugin",
				"emile plugin",
			},
		},
		{
			name:     "extra terms extend the vocabulary",
			dir:      "foo",
			stem:     "foo",
			extra:    []string{"panel"},
			contains: []string{"foo-panel", "foo_panel"},
		},
		{
			name:        "extra terms do not replace built-ins",
			dir:         "foo",
			stem:        "foo",
			extra:       []string{"panel"},
			contains:    []string{"foo-settings"},
			notContains: []string{"panel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Candidates(tt.dir, tt.stem, tt.extra...)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.notContains {
				assert.NotContains(t, got, not)
			}
		})
	}
}

func TestCandidates_DeterministicAndDeduplicated(t *testing.T) {
	first := domain.Candidates("my-plugin", "my-plugin")
	second := domain.Candidates("my-plugin", "my-plugin")
	require.Equal(t, first, second)

	seen := make(map[string]int)
	for _, c := range first {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "candidate %q appears %d times", c, n)
	}
}

func TestCandidates_EmptyInputs(t *testing.T) {
	assert.Empty(t, domain.Candidates("", ""))
}
