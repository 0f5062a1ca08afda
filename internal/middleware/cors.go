package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed "https://*.example.com" style pattern.
// The wildcard must be the first label of the host.
type wildcardOrigin struct {
	scheme string // "https://" or "http://"
	suffix string // ".example.com"
}

// parseWildcardOrigin parses a wildcard origin pattern. Returns nil when the
// pattern is not a valid single-wildcard origin.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	host := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(host, "*.") {
		return nil
	}

	suffix := host[1:] // keep the leading dot
	if strings.Contains(suffix, "*") {
		return nil
	}
	// Require at least one more dot so "https://*.com" style patterns
	// cannot match arbitrary apex domains.
	if strings.Count(suffix, ".") < 2 {
		return nil
	}

	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether a concrete origin satisfies the pattern.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	// The matched label must be non-empty and not contain further dots
	// beyond what the suffix accounts for.
	label := strings.TrimSuffix(host, w.suffix)
	return label != "" && !strings.Contains(label, "/")
}

// CORS middleware to handle cross-origin requests.
// Reads CORS_ALLOWED_ORIGINS (comma separated; entries may use a single
// leading wildcard like https://*.innerlog.app). If unset, all origins are
// allowed.
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exact []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin == "" {
				continue
			}
			if w := parseWildcardOrigin(origin); w != nil {
				wildcards = append(wildcards, w)
				continue
			}
			exact = append(exact, origin)
		}
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exact {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(403)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, X-Request-ID, X-Viewing-Client-Id, accept, origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
