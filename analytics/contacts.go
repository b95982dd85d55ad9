package analytics

import (
	"slices"
	"sort"
	"time"

	"portfolio/api/models"
	"portfolio/api/utils"
)

const (
	recentContactsMax = 10
	isoTimestamp      = "2006-01-02T15:04:05.000Z"
)

// ContactReport lists recent contacts and their hour-of-day spread for the
// trailing window using the tracker's clock.
func (t *Tracker) ContactReport(windowDays int) models.ContactReport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ContactReport(t.data, windowDays, t.now())
}

// RecentContacts returns up to ten contacts of the window, newest first.
func (t *Tracker) RecentContacts(windowDays int) []models.RecentContact {
	t.mu.Lock()
	defer t.mu.Unlock()
	return RecentContacts(t.data, windowDays, t.now())
}

func ContactReport(data models.AnalyticsData, windowDays int, now time.Time) models.ContactReport {
	return models.ContactReport{
		RecentContacts:     RecentContacts(data, windowDays, now),
		HourlyDistribution: HourlyDistribution(data, windowDays, now),
	}
}

// RecentContacts returns the contacts submitted within the window, newest
// first and capped at ten. Equal timestamps put the later submission first.
func RecentContacts(data models.AnalyticsData, windowDays int, now time.Time) []models.RecentContact {
	in := contactsInWindow(data.Contacts, windowDays, now)
	slices.Reverse(in)
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].SubmittedAt > in[j].SubmittedAt
	})
	if len(in) > recentContactsMax {
		in = in[:recentContactsMax]
	}

	out := make([]models.RecentContact, 0, len(in))
	for _, c := range in {
		out = append(out, models.RecentContact{
			ID:        c.ID,
			CreatedAt: time.UnixMilli(c.SubmittedAt).UTC().Format(isoTimestamp),
			IsRead:    c.IsRead,
			Source:    c.Source,
		})
	}
	return out
}

// HourlyDistribution counts the window's contacts per UTC hour of day. Only
// hours with submissions are listed, in ascending order.
func HourlyDistribution(data models.AnalyticsData, windowDays int, now time.Time) []models.HourlyCount {
	var counts [24]int
	for _, c := range contactsInWindow(data.Contacts, windowDays, now) {
		counts[time.UnixMilli(c.SubmittedAt).UTC().Hour()]++
	}

	out := make([]models.HourlyCount, 0, len(counts))
	for hour, n := range counts {
		if n > 0 {
			out = append(out, models.HourlyCount{Hour: hour, Count: n})
		}
	}
	return out
}

func contactsInWindow(contacts []models.ContactSubmission, windowDays int, now time.Time) []models.ContactSubmission {
	days := utils.NormalizeWindow(windowDays)
	startTime := now.UnixMilli() - int64(days)*day.Milliseconds()

	var out []models.ContactSubmission
	for _, c := range contacts {
		if c.SubmittedAt >= startTime {
			out = append(out, c)
		}
	}
	return out
}
