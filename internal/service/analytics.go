package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"lariat/internal/model"
)

const (
	dateLayout = "2006-01-02"
	// recentActivitySize caps the recent-events projection
	recentActivitySize = 10
	// topCountries caps the country breakdown
	topCountries = 10
)

// Traffic source categories
const (
	SourceDirect   = "Direct"
	SourceSearch   = "Search"
	SourceSocial   = "Social"
	SourceEmail    = "Email"
	SourceReferral = "Referral"
)

var (
	searchHosts = []string{"google", "bing"}
	socialHosts = []string{"facebook", "twitter", "instagram"}
	emailHosts  = []string{"email", "newsletter"}

	// canonical ordering used to break count ties deterministically
	sourceOrder = []string{SourceDirect, SourceSearch, SourceSocial, SourceEmail, SourceReferral}
)

// AnalyticsService aggregates a target's click history into grouped and
// windowed statistics. It is a pure read over events already recorded; it
// performs no writes.
type AnalyticsService struct {
	repo MySQLRepositoryInterface
	now  func() time.Time
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(repo MySQLRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
		now:  time.Now,
	}
}

// Summary computes the aggregated view of a target's clicks over a time
// range. The window is anchored at the query time taken once at call start.
func (s *AnalyticsService) Summary(ctx context.Context, kind model.TargetKind, targetID string, rng model.TimeRange) (*model.AnalyticsSummary, error) {
	now := s.now()

	var since *time.Time
	if rng != model.RangeAll {
		cutoff := now.Add(-time.Duration(rng.Days()) * 24 * time.Hour)
		since = &cutoff
	}

	// Newest first; the daily series and category maps are order-insensitive,
	// recent activity relies on this ordering.
	events, err := s.repo.GetClickEvents(ctx, kind, targetID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load click events: %w", err)
	}

	summary := &model.AnalyticsSummary{
		Range:          rng,
		TotalClicks:    int64(len(events)),
		ByDevice:       make(map[string]int64),
		ByBrowser:      make(map[string]int64),
		ByOS:           make(map[string]int64),
		ByCountry:      []model.CountryStat{},
		TrafficSources: []model.TrafficSource{},
		RecentActivity: []model.RecentClick{},
	}

	ips := make(map[string]struct{})
	countryCounts := make(map[string]int64)
	countryFirstSeen := make(map[string]int)
	sourceCounts := make(map[string]int64)
	dayClicks := make(map[string]int64)
	dayIPs := make(map[string]map[string]struct{})

	for i, ev := range events {
		ips[ev.IPAddress] = struct{}{}

		summary.ByDevice[normalize(ev.Device)]++
		summary.ByBrowser[normalize(ev.Browser)]++
		summary.ByOS[normalize(ev.OS)]++

		if country := normalize(ev.Country); country != "Unknown" {
			if _, seen := countryCounts[country]; !seen {
				countryFirstSeen[country] = i
			}
			countryCounts[country]++
		}

		sourceCounts[classifySource(ev.Referrer)]++

		day := ev.Timestamp.In(now.Location()).Format(dateLayout)
		dayClicks[day]++
		if dayIPs[day] == nil {
			dayIPs[day] = make(map[string]struct{})
		}
		dayIPs[day][ev.IPAddress] = struct{}{}
	}

	summary.UniqueClicks = int64(len(ips))
	summary.ByCountry = topCountryStats(countryCounts, countryFirstSeen)
	summary.DailySeries = dailySeries(now, rng.Days(), dayClicks, dayIPs)
	summary.TrafficSources = trafficSources(sourceCounts, summary.TotalClicks)

	for _, ev := range events[:min(len(events), recentActivitySize)] {
		summary.RecentActivity = append(summary.RecentActivity, model.RecentClick{
			Timestamp: ev.Timestamp,
			Device:    ev.Device,
			Browser:   ev.Browser,
			OS:        ev.OS,
			Country:   ev.Country,
			Referrer:  ev.Referrer,
		})
	}

	return summary, nil
}

// normalize folds missing category values into "Unknown"
func normalize(label string) string {
	if label == "" {
		return "Unknown"
	}
	return label
}

// classifySource buckets a referrer into a coarse traffic source. Absence of
// a referrer means the visitor typed or pasted the link.
func classifySource(referrer string) string {
	if referrer == "" {
		return SourceDirect
	}

	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return SourceReferral
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case containsAny(host, searchHosts):
		return SourceSearch
	case containsAny(host, socialHosts):
		return SourceSocial
	case containsAny(host, emailHosts):
		return SourceEmail
	default:
		return SourceReferral
	}
}

func containsAny(host string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(host, token) {
			return true
		}
	}
	return false
}

// topCountryStats ranks countries by count, ties broken by first encounter,
// truncated to the top 10
func topCountryStats(counts map[string]int64, firstSeen map[string]int) []model.CountryStat {
	stats := make([]model.CountryStat, 0, len(counts))
	for country, count := range counts {
		stats = append(stats, model.CountryStat{Country: country, Count: count})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return firstSeen[stats[i].Country] < firstSeen[stats[j].Country]
	})

	if len(stats) > topCountries {
		stats = stats[:topCountries]
	}
	return stats
}

// dailySeries renders one zero-filled bucket per calendar day, oldest first
func dailySeries(now time.Time, days int, dayClicks map[string]int64, dayIPs map[string]map[string]struct{}) []model.DailyBucket {
	series := make([]model.DailyBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		series = append(series, model.DailyBucket{
			Date:         day,
			Clicks:       dayClicks[day],
			UniqueClicks: int64(len(dayIPs[day])),
		})
	}
	return series
}

// trafficSources expresses each category as a raw count plus a percentage of
// the filtered total. Percentages are rounded per bucket and do not
// necessarily sum to 100.
func trafficSources(counts map[string]int64, total int64) []model.TrafficSource {
	sources := make([]model.TrafficSource, 0, len(counts))
	for _, source := range sourceOrder {
		count, ok := counts[source]
		if !ok {
			continue
		}
		sources = append(sources, model.TrafficSource{
			Source:     source,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Count > sources[j].Count
	})
	return sources
}
