package wordpress

import (
	"strings"
)

// NormalizeURL ensures a site URL carries a scheme and no trailing slash.
// Normalization is idempotent: applying it twice yields the same value.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimRight(u, "/")
}
