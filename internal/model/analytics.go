package model

import (
	"fmt"
	"time"
)

// TimeRange selects the aggregation window for analytics queries.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
	RangeAll    TimeRange = "all"
)

// ParseTimeRange validates a range selector coming from a query parameter.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case Range7Days, Range30Days, Range90Days, RangeAll:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range: %q", s)
}

// Days returns the number of daily buckets the range covers. The all-time
// range renders the last 365 days.
func (r TimeRange) Days() int {
	switch r {
	case Range7Days:
		return 7
	case Range90Days:
		return 90
	case RangeAll:
		return 365
	default:
		return 30
	}
}

// DailyBucket is one calendar day of the click timeline
type DailyBucket struct {
	Date         string `json:"date"`
	Clicks       int64  `json:"clicks"`
	UniqueClicks int64  `json:"unique_clicks"`
}

// CountryStat is one entry of the top-countries breakdown
type CountryStat struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// TrafficSource is one referrer category with its share of the total
type TrafficSource struct {
	Source     string `json:"source"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

// RecentClick is a click event projected for display, with the visitor IP
// redacted.
type RecentClick struct {
	Timestamp time.Time `json:"timestamp"`
	Device    string    `json:"device"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Country   string    `json:"country,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
}

// AnalyticsSummary is the aggregated view of a target's click history over
// a time range.
type AnalyticsSummary struct {
	Range          TimeRange        `json:"range"`
	TotalClicks    int64            `json:"total_clicks"`
	UniqueClicks   int64            `json:"unique_clicks"`
	ByDevice       map[string]int64 `json:"by_device"`
	ByBrowser      map[string]int64 `json:"by_browser"`
	ByOS           map[string]int64 `json:"by_os"`
	ByCountry      []CountryStat    `json:"by_country"`
	DailySeries    []DailyBucket    `json:"daily_series"`
	TrafficSources []TrafficSource  `json:"traffic_sources"`
	RecentActivity []RecentClick    `json:"recent_activity"`
}
