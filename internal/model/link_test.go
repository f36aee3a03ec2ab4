package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLink_TableName(t *testing.T) {
	l := Link{}
	assert.Equal(t, "links", l.TableName())
}

func TestQRCode_TableName(t *testing.T) {
	q := QRCode{}
	assert.Equal(t, "qr_codes", q.TableName())
}

func TestClickEvent_TableName(t *testing.T) {
	e := ClickEvent{}
	assert.Equal(t, "click_events", e.TableName())
}

func TestLink_ShortURL(t *testing.T) {
	tests := []struct {
		name         string
		shortCode    string
		customDomain string
		baseURL      string
		expected     string
	}{
		{
			name:      "base url",
			shortCode: "abc123",
			baseURL:   "https://lar.at",
			expected:  "https://lar.at/abc123",
		},
		{
			name:         "custom domain takes precedence",
			shortCode:    "abc123",
			customDomain: "go.corp.io",
			baseURL:      "https://lar.at",
			expected:     "https://go.corp.io/abc123",
		},
		{
			name:      "local base url",
			shortCode: "xYz789",
			baseURL:   "http://localhost:8080",
			expected:  "http://localhost:8080/xYz789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Link{
				ShortCode:    tt.shortCode,
				CustomDomain: tt.customDomain,
			}
			assert.Equal(t, tt.expected, l.ShortURL(tt.baseURL))
		})
	}
}
