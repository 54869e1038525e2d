package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allowlist(origins ...string) *ServerConfig {
	return &ServerConfig{AllowedOrigins: origins}
}

func TestOriginAllowedExactMatch(t *testing.T) {
	cfg := allowlist("https://example.com", "http://localhost:3000")

	require.True(t, cfg.OriginAllowed("https://example.com"))
	require.True(t, cfg.OriginAllowed("HTTPS://EXAMPLE.COM"))
	require.True(t, cfg.OriginAllowed("http://localhost:3000"))
	require.False(t, cfg.OriginAllowed("https://evil.com"))
	require.False(t, cfg.OriginAllowed("http://example.com"))
}

func TestOriginAllowedWildcardSubdomain(t *testing.T) {
	cfg := allowlist("https://*.example.com")

	require.True(t, cfg.OriginAllowed("https://app.example.com"))
	require.True(t, cfg.OriginAllowed("https://staging.example.com"))
	require.False(t, cfg.OriginAllowed("https://example.com"), "apex is not covered by the wildcard")
	require.False(t, cfg.OriginAllowed("https://a.b.example.com"), "only one subdomain level")
	require.False(t, cfg.OriginAllowed("http://app.example.com"), "scheme must match")
	require.False(t, cfg.OriginAllowed("https://app.example.com.evil.com"))
}

func TestOriginAllowedEmptyOriginPasses(t *testing.T) {
	require.True(t, allowlist("https://example.com").OriginAllowed(""))
}

func TestOriginAllowedEmptyAllowlistBlocksBrowsers(t *testing.T) {
	cfg := allowlist()
	require.False(t, cfg.OriginAllowed("https://example.com"))
	require.True(t, cfg.OriginAllowed(""))
}

func TestParseOriginsTrimsAndSkipsEmpty(t *testing.T) {
	origins := parseOrigins(" https://a.com , ,https://b.com,")
	require.Equal(t, []string{"https://a.com", "https://b.com"}, origins)
}
