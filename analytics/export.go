package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"portfolio/api/models"
	"portfolio/api/utils"
)

// Export renders the export document and its download filename from a
// single reading of the clock, so both carry the same date.
func (t *Tracker) Export(windowDays int) (data []byte, filename string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	data, err = ExportJSON(t.data, windowDays, now)
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(windowDays, now), nil
}

// BuildExport assembles the export document.
func BuildExport(data models.AnalyticsData, windowDays int, now time.Time) models.Export {
	return models.Export{
		ExportDate:  now.UTC().Format(isoTimestamp),
		TimeRange:   utils.TimeRangeLabel(windowDays),
		Analytics:   Aggregate(data, windowDays, now),
		Performance: Performance(data),
		RawData: models.RawTotals{
			TotalEvents:   len(data.Events),
			TotalContacts: len(data.Contacts),
			TotalSessions: len(data.Sessions),
			LastUpdated:   data.LastUpdated,
		},
	}
}

// ExportJSON returns BuildExport as two-space indented JSON.
func ExportJSON(data models.AnalyticsData, windowDays int, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildExport(data, windowDays, now)); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExportFilename returns portfolio-analytics-<N>d-<YYYY-MM-DD>.json.
func ExportFilename(windowDays int, now time.Time) string {
	return fmt.Sprintf("portfolio-analytics-%s-%s.json", utils.TimeRangeLabel(windowDays), now.UTC().Format(isoDate))
}
