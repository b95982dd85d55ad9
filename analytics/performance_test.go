package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/api/models"
)

func TestGeographicData(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		want     []models.CountryVisitors
	}{
		{
			name:     "floor of ten visitors",
			sessions: 0,
			want: []models.CountryVisitors{
				{Country: "United States", Visitors: 3},
				{Country: "India", Visitors: 2},
				{Country: "United Kingdom", Visitors: 1},
				{Country: "Canada", Visitors: 1},
			},
		},
		{
			name:     "scaled by sessions",
			sessions: 125, // 100 visitors
			want: []models.CountryVisitors{
				{Country: "United States", Visitors: 35},
				{Country: "India", Visitors: 25},
				{Country: "United Kingdom", Visitors: 15},
				{Country: "Canada", Visitors: 10},
				{Country: "Germany", Visitors: 8},
				{Country: "Australia", Visitors: 5},
				{Country: "France", Visitors: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geographicData(tt.sessions))
		})
	}
}

func TestDeviceDistribution(t *testing.T) {
	ua := func(agents ...string) []models.AnalyticsEvent {
		var evs []models.AnalyticsEvent
		for _, a := range agents {
			evs = append(evs, models.AnalyticsEvent{Kind: models.KindPageView, UserAgent: a})
		}
		return evs
	}

	t.Run("no samples uses default split", func(t *testing.T) {
		got := deviceDistribution(ua("", ""))
		assert.Equal(t, models.DeviceDistribution{Desktop: 45, Mobile: 40, Tablet: 15}, got)
	})

	t.Run("tablet absorbs rounding", func(t *testing.T) {
		got := deviceDistribution(ua("iPhone Mobile Safari", "Android Mobile", "Tablet PC"))
		assert.Equal(t, models.DeviceDistribution{Desktop: 0, Mobile: 67, Tablet: 33}, got)
		assert.Equal(t, 100, got.Desktop+got.Mobile+got.Tablet)
	})

	t.Run("mobile wins over tablet", func(t *testing.T) {
		got := deviceDistribution(ua("Tablet Mobile"))
		assert.Equal(t, models.DeviceDistribution{Mobile: 100}, got)
	})

	t.Run("only the last hundred samples count", func(t *testing.T) {
		var agents []string
		for i := 0; i < 50; i++ {
			agents = append(agents, "Mobile")
		}
		for i := 0; i < 100; i++ {
			agents = append(agents, fmt.Sprintf("Desktop %d", i))
		}
		got := deviceDistribution(ua(agents...))
		assert.Equal(t, models.DeviceDistribution{Desktop: 100}, got)
	})
}

func TestPerformance(t *testing.T) {
	data := emptyData(testNow)
	data.Sessions = []string{"a", "b"}

	report := Performance(data)
	assert.Equal(t, 1.2, report.PageLoadTimes.Home)
	assert.Equal(t, 2.3, report.PageLoadTimes.Demos)
	assert.Equal(t, 60, report.BrowserDistribution.Chrome)
	assert.Equal(t, defaultDevices, report.DeviceDistribution)
	assert.Len(t, report.GeographicData, 4)
}
