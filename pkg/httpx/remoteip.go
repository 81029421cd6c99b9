package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's IP address, preferring proxy-forwarded
// headers over the raw peer address.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For is a comma-separated list; the first non-empty
	// entry is the original client. Empty entries fall through so a
	// degenerate header cannot yield an empty key.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, entry := range strings.Split(xff, ",") {
			if ip := strings.TrimSpace(entry); ip != "" {
				return ip
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
