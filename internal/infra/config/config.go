package config

import (
	"os"
	"strings"

	"github.com/ai-solution/site-backend/pkg/env"
)

type ServerConfig struct {
	Host      string
	Port      string
	BodyLimit int
	// AllowedOrigins holds exact origins plus wildcard-subdomain patterns of
	// the form "https://*.example.com".
	AllowedOrigins []string
}

func NewServerConfig() *ServerConfig {
	origins := parseOrigins(os.Getenv("CORS_ORIGINS"))
	if frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL")); frontend != "" {
		origins = append(origins, frontend)
	}
	return &ServerConfig{
		Host:           env.GetEnv("HOST", ""),
		Port:           env.GetEnv("PORT", "8080"),
		BodyLimit:      env.GetEnvInt("BODY_LIMIT", 2*1024*1024),
		AllowedOrigins: origins,
	}
}

func parseOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// OriginAllowed matches the origin against the allow-list. No Origin header
// (server-to-server, curl) is allowed; browsers always send one cross-origin.
func (c *ServerConfig) OriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if matchOrigin(allowed, origin) {
			return true
		}
	}
	return false
}

func matchOrigin(pattern, origin string) bool {
	if !strings.Contains(pattern, "*") {
		return strings.EqualFold(pattern, origin)
	}
	// "https://*.example.com" matches any single subdomain level.
	scheme, host, ok := strings.Cut(pattern, "://")
	if !ok {
		return false
	}
	originScheme, originHost, ok := strings.Cut(origin, "://")
	if !ok || !strings.EqualFold(scheme, originScheme) {
		return false
	}
	suffix, found := strings.CutPrefix(host, "*.")
	if !found {
		return false
	}
	if !strings.HasSuffix(strings.ToLower(originHost), "."+strings.ToLower(suffix)) {
		return false
	}
	sub := originHost[:len(originHost)-len(suffix)-1]
	return sub != "" && !strings.Contains(sub, ".")
}
