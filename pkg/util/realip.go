package util

import (
	"net"
	"net/http"
	"strings"
)

// LoopbackPlaceholder is recorded when no client address can be determined
const LoopbackPlaceholder = "127.0.0.1"

// ClientIP resolves the visitor address for click recording: the first entry
// of a forwarded-for chain, else the X-Real-IP header, else the direct
// connection address, else a loopback placeholder.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}

	if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
		return rip
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return LoopbackPlaceholder
}
