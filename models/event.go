// api/models/event.go
package models

// EventKind tags a recorded interaction.
type EventKind string

const (
	KindPageView      EventKind = "page_view"
	KindContactSubmit EventKind = "contact_submit"
	KindDemoUsed      EventKind = "demo_used"
	KindProjectView   EventKind = "project_view"
	KindBlogRead      EventKind = "blog_read"
)

// AnalyticsEvent represents a single recorded interaction. OccurredAt is in
// milliseconds since the Unix epoch.
type AnalyticsEvent struct {
	Kind       EventKind `json:"type"`
	Page       string    `json:"page"`
	OccurredAt int64     `json:"timestamp"`
	SessionID  string    `json:"sessionId"`
	UserAgent  string    `json:"userAgent,omitempty"`
	Referrer   string    `json:"referrer,omitempty"`
}

// ContactSubmission is an inbound contact-form event. IsRead is the only field
// that changes after creation.
type ContactSubmission struct {
	ID          string `json:"id"`
	SubmittedAt int64  `json:"timestamp"`
	Source      string `json:"source"`
	IsRead      bool   `json:"isRead"`
}

// AnalyticsData is the persisted layout of the store.
type AnalyticsData struct {
	Events      []AnalyticsEvent    `json:"events"`
	Contacts    []ContactSubmission `json:"contacts"`
	Sessions    []string            `json:"sessions"`
	LastUpdated int64               `json:"lastUpdated"`
}
