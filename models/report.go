package models

// Overview is the windowed aggregate view served to the dashboard.
type Overview struct {
	Metrics      OverviewMetrics `json:"metrics"`
	Trends       Trends          `json:"trends"`
	Sources      []SourceCount   `json:"sources"`
	PopularPages []PopularPage   `json:"popular_pages"`
}

type OverviewMetrics struct {
	TotalContacts    int     `json:"total_contacts"`
	ReadContacts     int     `json:"read_contacts"`
	UnreadContacts   int     `json:"unread_contacts"`
	ResponseRate     float64 `json:"response_rate"`
	UniqueSessions   int     `json:"unique_sessions"`
	TotalPageViews   int     `json:"total_page_views"`
	AvgDailyContacts float64 `json:"avg_daily_contacts"`
}

type Trends struct {
	// DailyContacts holds page views per day despite the name; the dashboard
	// reads this key.
	DailyContacts []DailyCount `json:"daily_contacts"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// PopularPage replaces the old TopPathResult.
type PopularPage struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

// PerformanceReport is synthetic: only the geographic and device sections are
// derived from stored data.
type PerformanceReport struct {
	PageLoadTimes       PageLoadTimes       `json:"page_load_times"`
	DeviceDistribution  DeviceDistribution  `json:"device_distribution"`
	BrowserDistribution BrowserDistribution `json:"browser_distribution"`
	GeographicData      []CountryVisitors   `json:"geographic_data"`
}

type PageLoadTimes struct {
	Home      float64 `json:"home"`
	Projects  float64 `json:"projects"`
	Blog      float64 `json:"blog"`
	Contact   float64 `json:"contact"`
	Analytics float64 `json:"analytics"`
	Demos     float64 `json:"demos"`
}

type DeviceDistribution struct {
	Desktop int `json:"desktop"`
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
}

type BrowserDistribution struct {
	Chrome  int `json:"chrome"`
	Safari  int `json:"safari"`
	Firefox int `json:"firefox"`
	Edge    int `json:"edge"`
}

type CountryVisitors struct {
	Country  string `json:"country"`
	Visitors int    `json:"visitors"`
}

// ContactReport is the contact detail view of one window.
type ContactReport struct {
	RecentContacts     []RecentContact `json:"recent_contacts"`
	HourlyDistribution []HourlyCount   `json:"hourly_distribution"`
}

type RecentContact struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	IsRead    bool   `json:"is_read"`
	Source    string `json:"source"`
}

// HourlyCount is the number of contacts submitted in one UTC hour of day (0-23).
type HourlyCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Export is the document written by the exporter.
type Export struct {
	ExportDate  string            `json:"exportDate"`
	TimeRange   string            `json:"timeRange"`
	Analytics   Overview          `json:"analytics"`
	Performance PerformanceReport `json:"performance"`
	RawData     RawTotals         `json:"rawData"`
}

type RawTotals struct {
	TotalEvents   int   `json:"totalEvents"`
	TotalContacts int   `json:"totalContacts"`
	TotalSessions int   `json:"totalSessions"`
	LastUpdated   int64 `json:"lastUpdated"`
}

// Request bodies.

type PageViewRequest struct {
	Page string `json:"page" binding:"required"`
}

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}
