package analytics

import (
	"math"
	"sort"
	"time"

	"portfolio/api/models"
	"portfolio/api/utils"
)

const (
	day             = 24 * time.Hour
	popularPagesMax = 5
	isoDate         = "2006-01-02"
)

// Aggregate computes the overview for the trailing window using the tracker's clock.
func (t *Tracker) Aggregate(windowDays int) models.Overview {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Aggregate(t.data, windowDays, t.now())
}

// Aggregate derives the overview of data over the trailing windowDays ending at
// now. Unsupported windows fall back to 7 days. It does not modify data.
func Aggregate(data models.AnalyticsData, windowDays int, now time.Time) models.Overview {
	days := utils.NormalizeWindow(windowDays)
	startTime := now.UnixMilli() - int64(days)*day.Milliseconds()

	// One bucket per calendar day, today first.
	keys := make([]string, days)
	daily := make(map[string]int, days)
	for i := 0; i < days; i++ {
		k := now.Add(-time.Duration(i) * day).UTC().Format(isoDate)
		keys[i] = k
		daily[k] = 0
	}

	sessions := make(map[string]struct{})
	pageViews := make(map[string]int)
	var pageOrder []string
	totalPageViews := 0

	for _, ev := range data.Events {
		if ev.OccurredAt < startTime {
			continue
		}
		sessions[ev.SessionID] = struct{}{}
		if ev.Kind != models.KindPageView {
			continue
		}
		totalPageViews++

		k := time.UnixMilli(ev.OccurredAt).UTC().Format(isoDate)
		if _, ok := daily[k]; ok {
			daily[k]++
		}

		if _, seen := pageViews[ev.Page]; !seen {
			pageOrder = append(pageOrder, ev.Page)
		}
		pageViews[ev.Page]++
	}

	totalContacts, readContacts := 0, 0
	for _, c := range data.Contacts {
		if c.SubmittedAt < startTime {
			continue
		}
		totalContacts++
		if c.IsRead {
			readContacts++
		}
	}

	responseRate := 0.0
	if totalContacts > 0 {
		responseRate = float64(readContacts) / float64(totalContacts) * 100
	}

	trend := make([]models.DailyCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		trend = append(trend, models.DailyCount{Date: keys[i], Count: daily[keys[i]]})
	}

	return models.Overview{
		Metrics: models.OverviewMetrics{
			TotalContacts:    totalContacts,
			ReadContacts:     readContacts,
			UnreadContacts:   totalContacts - readContacts,
			ResponseRate:     roundTenth(responseRate),
			UniqueSessions:   len(sessions),
			TotalPageViews:   totalPageViews,
			AvgDailyContacts: roundTenth(float64(totalContacts) / float64(days)),
		},
		Trends:       models.Trends{DailyContacts: trend},
		Sources:      contactSources(totalContacts),
		PopularPages: popularPages(pageOrder, pageViews),
	}
}

// contactSources splits the contact total by fixed shares. No source is tracked
// per contact, so this is an estimate.
func contactSources(total int) []models.SourceCount {
	return []models.SourceCount{
		{Source: "website", Count: int(math.Floor(float64(total) * 0.8))},
		{Source: "mobile", Count: int(math.Floor(float64(total) * 0.15))},
		{Source: "social", Count: int(math.Floor(float64(total) * 0.05))},
	}
}

// popularPages ranks pages by views; ties keep first-seen order.
func popularPages(order []string, views map[string]int) []models.PopularPage {
	pages := make([]models.PopularPage, 0, len(order))
	for _, p := range order {
		pages = append(pages, models.PopularPage{Page: p, Views: views[p]})
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Views > pages[j].Views
	})
	if len(pages) > popularPagesMax {
		pages = pages[:popularPagesMax]
	}
	return pages
}

// roundTenth rounds half up to one decimal place.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
