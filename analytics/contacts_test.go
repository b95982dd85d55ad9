package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/models"
	"portfolio/api/store"
)

func contactAt(id string, at time.Time, read bool) models.ContactSubmission {
	return models.ContactSubmission{ID: id, SubmittedAt: at.UnixMilli(), Source: "website", IsRead: read}
}

func TestRecentContacts_NewestFirst(t *testing.T) {
	data := emptyData(testNow)
	data.Contacts = []models.ContactSubmission{
		contactAt("c_old", testNow.Add(-72*time.Hour), true),
		contactAt("c_new", testNow.Add(-time.Minute), false),
		contactAt("c_mid", testNow.Add(-5*time.Hour), false),
	}

	got := RecentContacts(data, 7, testNow)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"c_new", "c_mid", "c_old"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, models.RecentContact{
		ID:        "c_old",
		CreatedAt: "2026-10-15T15:00:00.000Z",
		IsRead:    true,
		Source:    "website",
	}, got[2])
}

func TestRecentContacts_TiesPutLaterSubmissionFirst(t *testing.T) {
	data := emptyData(testNow)
	data.Contacts = []models.ContactSubmission{
		contactAt("c_first", testNow, false),
		contactAt("c_second", testNow, false),
	}

	got := RecentContacts(data, 7, testNow)

	require.Len(t, got, 2)
	assert.Equal(t, "c_second", got[0].ID)
	assert.Equal(t, "c_first", got[1].ID)
}

func TestRecentContacts_CappedAtTen(t *testing.T) {
	data := emptyData(testNow)
	for i := 0; i < 15; i++ {
		data.Contacts = append(data.Contacts, contactAt(fmt.Sprintf("c_%02d", i), testNow.Add(time.Duration(i-15)*time.Hour), false))
	}

	got := RecentContacts(data, 7, testNow)

	require.Len(t, got, 10)
	assert.Equal(t, "c_14", got[0].ID)
	assert.Equal(t, "c_05", got[9].ID)
}

func TestRecentContacts_WindowFilter(t *testing.T) {
	data := emptyData(testNow)
	data.Contacts = []models.ContactSubmission{
		contactAt("c_edge", testNow.Add(-7*day), false),
		contactAt("c_outside", testNow.Add(-7*day-time.Millisecond), false),
		contactAt("c_month", testNow.Add(-20*day), false),
	}

	ids := func(rc []models.RecentContact) []string {
		var out []string
		for _, c := range rc {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"c_edge"}, ids(RecentContacts(data, 7, testNow)), "lower bound is inclusive")
	assert.Equal(t, []string{"c_edge", "c_outside", "c_month"}, ids(RecentContacts(data, 30, testNow)))
	assert.Equal(t, []string{"c_edge"}, ids(RecentContacts(data, 12, testNow)), "unsupported window means 7 days")
	assert.Empty(t, RecentContacts(emptyData(testNow), 90, testNow))
}

func TestHourlyDistribution(t *testing.T) {
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	data := emptyData(testNow)
	data.Contacts = []models.ContactSubmission{
		contactAt("a", base.Add(14*time.Hour+30*time.Minute), false),
		contactAt("b", base.Add(9*time.Hour), false),
		contactAt("c", base.Add(14*time.Hour+59*time.Minute), false),
		contactAt("d", base.Add(23*time.Hour+59*time.Minute), false),
		contactAt("e", base.Add(-30*day), false),
	}

	assert.Equal(t, []models.HourlyCount{
		{Hour: 9, Count: 1},
		{Hour: 14, Count: 2},
		{Hour: 23, Count: 1},
	}, HourlyDistribution(data, 7, testNow))

	assert.Empty(t, HourlyDistribution(emptyData(testNow), 7, testNow))
	assert.NotNil(t, HourlyDistribution(emptyData(testNow), 7, testNow))
}

func TestTrackerContactReport(t *testing.T) {
	tr, clock, _ := newTestTracker(t, store.NewMemoryStore())
	ctx := context.Background()

	first := tr.RecordContactSubmission(ctx)
	clock.now = clock.now.Add(2 * time.Hour)
	second := tr.RecordContactSubmission(ctx)
	tr.MarkContactRead(ctx, first)

	report := tr.ContactReport(7)

	require.Len(t, report.RecentContacts, 2)
	assert.Equal(t, second, report.RecentContacts[0].ID)
	assert.False(t, report.RecentContacts[0].IsRead)
	assert.Equal(t, first, report.RecentContacts[1].ID)
	assert.True(t, report.RecentContacts[1].IsRead)
	assert.Equal(t, "2026-10-18T17:00:00.000Z", report.RecentContacts[0].CreatedAt)
	assert.Equal(t, []models.HourlyCount{{Hour: 15, Count: 1}, {Hour: 17, Count: 1}}, report.HourlyDistribution)
	assert.Equal(t, report.RecentContacts, tr.RecentContacts(7))
}
