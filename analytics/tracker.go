// Package analytics records portfolio interactions into a single persisted
// blob and derives windowed reports from it.
//
// A Tracker owns the in-memory store. Every mutation is followed by a full
// write of the blob; write failures are logged and exposed through PersistErr
// but never undo the in-memory change.
package analytics

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio/api/models"
	"portfolio/api/store"
	"portfolio/api/utils"
)

// Visit describes who produced an event. An empty SessionID means the
// tracker's own session.
type Visit struct {
	SessionID string
	UserAgent string
	Referrer  string
}

type Tracker struct {
	mu         sync.Mutex
	blobs      store.BlobStore
	key        string
	log        logrus.FieldLogger
	now        func() time.Time
	data       models.AnalyticsData
	sessionID  string
	loadErr    error
	persistErr error
}

type Option func(*Tracker)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(t *Tracker) { t.key = key }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) { t.log = log }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker hydrates the store from blobs and opens a session. It does not
// fail: unreadable data is replaced by an empty store and reported via LoadErr.
func NewTracker(ctx context.Context, blobs store.BlobStore, opts ...Option) *Tracker {
	t := &Tracker{
		blobs: blobs,
		key:   DefaultKey,
		log:   logrus.StandardLogger(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	data, err := Load(ctx, blobs, t.key, t.now())
	if err != nil {
		t.log.WithError(err).WithField("key", t.key).Warn("Failed to load analytics data, starting empty")
		t.loadErr = err
	}
	t.data = data
	t.sessionID = t.BeginSession(ctx)
	return t
}

// SessionID returns the session opened by NewTracker.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// BeginSession generates a session id and registers it.
func (t *Tracker) BeginSession(ctx context.Context) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := utils.NewSessionID(t.now())
	if !slices.Contains(t.data.Sessions, id) {
		t.data.Sessions = append(t.data.Sessions, id)
	}
	t.saveLocked(ctx)
	return id
}

func (t *Tracker) RecordPageView(ctx context.Context, v Visit, page string) {
	t.appendEvent(ctx, models.AnalyticsEvent{
		Kind:      models.KindPageView,
		Page:      page,
		SessionID: v.SessionID,
		UserAgent: v.UserAgent,
		Referrer:  v.Referrer,
	})
}

func (t *Tracker) RecordDemoUsage(ctx context.Context, v Visit, name string) {
	t.appendEvent(ctx, models.AnalyticsEvent{
		Kind:      models.KindDemoUsed,
		Page:      "/demos/" + orUnknown(name),
		SessionID: v.SessionID,
	})
}

func (t *Tracker) RecordProjectView(ctx context.Context, v Visit, name string) {
	t.appendEvent(ctx, models.AnalyticsEvent{
		Kind:      models.KindProjectView,
		Page:      "/projects/" + orUnknown(name),
		SessionID: v.SessionID,
	})
}

func (t *Tracker) RecordBlogRead(ctx context.Context, v Visit, slug string) {
	t.appendEvent(ctx, models.AnalyticsEvent{
		Kind:      models.KindBlogRead,
		Page:      "/blog/" + orUnknown(slug),
		SessionID: v.SessionID,
	})
}

// RecordContactSubmission stores a new unread contact and returns its id.
func (t *Tracker) RecordContactSubmission(ctx context.Context) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	contact := models.ContactSubmission{
		ID:          utils.NewContactID(now),
		SubmittedAt: now.UnixMilli(),
		Source:      "website",
		IsRead:      false,
	}
	t.data.Contacts = append(t.data.Contacts, contact)
	t.saveLocked(ctx)

	t.log.WithField("contact_id", contact.ID).Debug("Recorded contact submission")
	return contact.ID
}

// MarkContactRead flags the contact as read. An unknown id is ignored; the
// result only says whether the id was present.
func (t *Tracker) MarkContactRead(ctx context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.data.Contacts {
		if t.data.Contacts[i].ID == id {
			t.data.Contacts[i].IsRead = true
			t.saveLocked(ctx)
			return true
		}
	}
	return false
}

// Clear drops all events, contacts and sessions and persists the empty store.
// The returned error is the result of that write; memory is cleared regardless.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.data = emptyData(t.now())
	err := t.saveLocked(ctx)
	t.log.Info("Analytics data cleared")
	return err
}

// Save forces a write of the current state.
func (t *Tracker) Save(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked(ctx)
}

// Snapshot returns a copy of the current store.
func (t *Tracker) Snapshot() models.AnalyticsData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneData(t.data)
}

// LoadErr is the error hit while hydrating, if any.
func (t *Tracker) LoadErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}

// PersistErr is the result of the most recent write; nil after a successful one.
func (t *Tracker) PersistErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.persistErr
}

func (t *Tracker) appendEvent(ctx context.Context, ev models.AnalyticsEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ev.OccurredAt = t.now().UnixMilli()
	if ev.SessionID == "" {
		ev.SessionID = t.sessionID
	}
	t.data.Events = append(t.data.Events, ev)
	t.saveLocked(ctx)

	t.log.WithFields(logrus.Fields{
		"type": ev.Kind,
		"page": ev.Page,
	}).Debug("Recorded event")
}

func (t *Tracker) saveLocked(ctx context.Context) error {
	t.data.LastUpdated = t.now().UnixMilli()
	err := Save(ctx, t.blobs, t.key, t.data)
	t.persistErr = err
	if err != nil {
		t.log.WithError(err).WithField("key", t.key).Warn("Failed to save analytics data")
	}
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
