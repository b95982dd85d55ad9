package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio/api/models"
	"portfolio/api/store"
)

// DefaultKey is the storage key the blob lives under.
const DefaultKey = "portfolio_analytics"

func emptyData(now time.Time) models.AnalyticsData {
	return models.AnalyticsData{
		Events:      []models.AnalyticsEvent{},
		Contacts:    []models.ContactSubmission{},
		Sessions:    []string{},
		LastUpdated: now.UnixMilli(),
	}
}

// Load reads the persisted store. A missing blob yields an empty store and no
// error. An unreadable or malformed blob yields an empty store together with the
// error, so callers can carry on with empty state and still report it.
func Load(ctx context.Context, blobs store.BlobStore, key string, now time.Time) (models.AnalyticsData, error) {
	raw, err := blobs.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return emptyData(now), nil
	}
	if err != nil {
		return emptyData(now), fmt.Errorf("failed to read analytics data: %w", err)
	}

	var data models.AnalyticsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return emptyData(now), fmt.Errorf("failed to decode analytics data: %w", err)
	}

	// Partially written blobs keep whatever collections they do have.
	if data.Events == nil {
		data.Events = []models.AnalyticsEvent{}
	}
	if data.Contacts == nil {
		data.Contacts = []models.ContactSubmission{}
	}
	if data.Sessions == nil {
		data.Sessions = []string{}
	}
	if data.LastUpdated == 0 {
		data.LastUpdated = now.UnixMilli()
	}
	return data, nil
}

// Save serializes data and writes it under key.
func Save(ctx context.Context, blobs store.BlobStore, key string, data models.AnalyticsData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode analytics data: %w", err)
	}
	if err := blobs.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write analytics data: %w", err)
	}
	return nil
}

func cloneData(d models.AnalyticsData) models.AnalyticsData {
	return models.AnalyticsData{
		Events:      append([]models.AnalyticsEvent{}, d.Events...),
		Contacts:    append([]models.ContactSubmission{}, d.Contacts...),
		Sessions:    append([]string{}, d.Sessions...),
		LastUpdated: d.LastUpdated,
	}
}
