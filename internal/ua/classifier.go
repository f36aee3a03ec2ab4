package ua

import (
	"strings"
)

// Info is the classification of a raw user-agent string
type Info struct {
	Device  string `json:"device"`
	Browser string `json:"browser"`
	OS      string `json:"os"`
}

const (
	// DefaultDevice is reported when no device rule matches
	DefaultDevice = "Desktop"
	// Unknown is reported when no browser or OS rule matches
	Unknown = "Unknown"
)

// rule maps a lower-case user-agent substring to a category label
type rule struct {
	token string
	label string
}

// Rules are evaluated in order; the first matching token wins per axis.
// "chrome" sits before "safari" on purpose: Chrome UAs contain "safari",
// so Chrome-on-iOS classifies as Chrome.
var (
	deviceRules = []rule{
		{"mobile", "Mobile"},
		{"android", "Mobile"},
		{"iphone", "Mobile"},
		{"tablet", "Tablet"},
		{"ipad", "Tablet"},
	}

	browserRules = []rule{
		{"chrome", "Chrome"},
		{"firefox", "Firefox"},
		{"safari", "Safari"},
		{"edge", "Edge"},
		{"opera", "Opera"},
	}

	osRules = []rule{
		{"windows", "Windows"},
		{"mac", "macOS"},
		{"linux", "Linux"},
		{"android", "Android"},
		{"ios", "iOS"},
	}
)

// Classify maps a raw user-agent string to device, browser and OS labels.
// It is pure and total: any input, including the empty string, yields
// exactly one label per axis.
func Classify(userAgent string) Info {
	lowered := strings.ToLower(userAgent)

	return Info{
		Device:  match(lowered, deviceRules, DefaultDevice),
		Browser: match(lowered, browserRules, Unknown),
		OS:      match(lowered, osRules, Unknown),
	}
}

func match(ua string, rules []rule, fallback string) string {
	for _, r := range rules {
		if strings.Contains(ua, r.token) {
			return r.label
		}
	}
	return fallback
}
