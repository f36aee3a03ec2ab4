package ua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		userAgent   string
		wantDevice  string
		wantBrowser string
		wantOS      string
	}{
		{
			name:        "chrome on windows desktop",
			userAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantDevice:  "Desktop",
			wantBrowser: "Chrome",
			wantOS:      "Windows",
		},
		{
			name:        "safari on iphone",
			userAgent:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantDevice:  "Mobile",
			wantBrowser: "Safari",
			wantOS:      "macOS",
		},
		{
			name:        "firefox on linux",
			userAgent:   "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			wantDevice:  "Desktop",
			wantBrowser: "Firefox",
			wantOS:      "Linux",
		},
		{
			name:        "chrome on android phone",
			userAgent:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			wantDevice:  "Mobile",
			wantBrowser: "Chrome",
			wantOS:      "Linux",
		},
		{
			name:        "ipad tablet",
			userAgent:   "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/604.1",
			wantDevice:  "Tablet",
			wantBrowser: "Safari",
			wantOS:      "macOS",
		},
		{
			name:        "empty user agent",
			userAgent:   "",
			wantDevice:  "Desktop",
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
		},
		{
			name:        "gibberish",
			userAgent:   "curl/8.4.0",
			wantDevice:  "Desktop",
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
		},
		{
			name:        "case insensitive",
			userAgent:   "MOZILLA/5.0 (WINDOWS NT 10.0) CHROME/120.0",
			wantDevice:  "Desktop",
			wantBrowser: "Chrome",
			wantOS:      "Windows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Classify(tt.userAgent)
			assert.Equal(t, tt.wantDevice, info.Device)
			assert.Equal(t, tt.wantBrowser, info.Browser)
			assert.Equal(t, tt.wantOS, info.OS)
		})
	}
}

func TestClassify_ChromeBeforeSafari(t *testing.T) {
	// Chrome UAs advertise "Safari" as well; rule order must pick Chrome.
	info := Classify("Mozilla/5.0 AppleWebKit/537.36 Chrome/120.0 Safari/537.36")
	assert.Equal(t, "Chrome", info.Browser)
}

func TestClassify_Deterministic(t *testing.T) {
	const ua = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Firefox/121.0"
	first := Classify(ua)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(ua))
	}
}
