package analytics

import (
	"math"
	"strings"

	"portfolio/api/models"
)

const deviceSampleSize = 100

var countryShares = []struct {
	country string
	share   float64
}{
	{"United States", 0.35},
	{"India", 0.25},
	{"United Kingdom", 0.15},
	{"Canada", 0.10},
	{"Germany", 0.08},
	{"Australia", 0.05},
	{"France", 0.02},
}

// Not measured; fixed figures for the dashboard.
var (
	pageLoadTimes = models.PageLoadTimes{
		Home:      1.2,
		Projects:  1.8,
		Blog:      2.1,
		Contact:   1.5,
		Analytics: 1.9,
		Demos:     2.3,
	}
	browserDistribution = models.BrowserDistribution{
		Chrome:  60,
		Safari:  25,
		Firefox: 10,
		Edge:    5,
	}
	defaultDevices = models.DeviceDistribution{Desktop: 45, Mobile: 40, Tablet: 15}
)

func (t *Tracker) Performance() models.PerformanceReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Performance(t.data)
}

// Performance builds the performance report. Geography is scaled from the
// session count and devices come from recent user agents.
func Performance(data models.AnalyticsData) models.PerformanceReport {
	return models.PerformanceReport{
		PageLoadTimes:       pageLoadTimes,
		DeviceDistribution:  deviceDistribution(data.Events),
		BrowserDistribution: browserDistribution,
		GeographicData:      geographicData(len(data.Sessions)),
	}
}

func geographicData(sessionCount int) []models.CountryVisitors {
	baseVisitors := max(10, int(math.Floor(float64(sessionCount)*0.8)))

	out := make([]models.CountryVisitors, 0, len(countryShares))
	for _, c := range countryShares {
		visitors := int(math.Floor(float64(baseVisitors) * c.share))
		if visitors > 0 {
			out = append(out, models.CountryVisitors{Country: c.country, Visitors: visitors})
		}
	}
	return out
}

func deviceDistribution(events []models.AnalyticsEvent) models.DeviceDistribution {
	var agents []string
	for _, ev := range events {
		if ev.UserAgent != "" {
			agents = append(agents, ev.UserAgent)
		}
	}
	if len(agents) > deviceSampleSize {
		agents = agents[len(agents)-deviceSampleSize:]
	}
	if len(agents) == 0 {
		return defaultDevices
	}

	var desktop, mobile, tablet int
	for _, ua := range agents {
		switch {
		case strings.Contains(ua, "Mobile"):
			mobile++
		case strings.Contains(ua, "Tablet"):
			tablet++
		default:
			desktop++
		}
	}

	total := float64(len(agents))
	d := int(math.Floor(float64(desktop)/total*100 + 0.5))
	m := int(math.Floor(float64(mobile)/total*100 + 0.5))
	// tablet absorbs the rounding error
	return models.DeviceDistribution{Desktop: d, Mobile: m, Tablet: 100 - d - m}
}
