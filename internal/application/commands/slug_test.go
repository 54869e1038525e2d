package commands_test

import (
	"testing"

	"github.com/ai-solution/site-backend/internal/application/commands"
	"github.com/stretchr/testify/require"
)

func TestSlugifyDerivesURLSafeSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":                  "hello-world",
		"  Spaces   everywhere  ":      "spaces-everywhere",
		"Already-hyphenated title":     "already-hyphenated-title",
		"Punctuation, stripped! (ok?)": "punctuation-stripped-ok",
		"Informé café 2024":  "informé-café-2024",
		"---":                          "",
		"":                             "",
	}
	for input, want := range cases {
		require.Equal(t, want, commands.Slugify(input), "input %q", input)
	}
}

func TestSlugifyKeepsDigits(t *testing.T) {
	require.Equal(t, "top-10-trends-2025", commands.Slugify("Top 10 Trends 2025"))
}
