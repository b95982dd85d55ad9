// api/handlers/track_handlers.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio/api/analytics"
	"portfolio/api/middleware"
	"portfolio/api/models"
)

const storeTimeout = 5 * time.Second

type AnalyticsHandlers struct {
	Tracker *analytics.Tracker
	log     logrus.FieldLogger
}

func NewAnalyticsHandlers(t *analytics.Tracker, log logrus.FieldLogger) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		Tracker: t,
		log:     log,
	}
}

// StartSession opens a session for a new page load.
func (h *AnalyticsHandlers) StartSession(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := h.Tracker.BeginSession(ctx)
	c.JSON(http.StatusCreated, models.SessionResponse{SessionID: id})
}

// Tracking is best effort: once the request is valid the event is kept in
// memory and the handler answers 202 whether or not the write went through.

func (h *AnalyticsHandlers) TrackPageView(c *gin.Context) {
	var req models.PageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Debug("Invalid page view body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	h.Tracker.RecordPageView(ctx, middleware.VisitFrom(c), req.Page)
	c.Status(http.StatusAccepted)
}

func (h *AnalyticsHandlers) TrackContact(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := h.Tracker.RecordContactSubmission(ctx)
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

func (h *AnalyticsHandlers) TrackDemo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	h.Tracker.RecordDemoUsage(ctx, middleware.VisitFrom(c), c.Param("name"))
	c.Status(http.StatusAccepted)
}

func (h *AnalyticsHandlers) TrackProject(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	h.Tracker.RecordProjectView(ctx, middleware.VisitFrom(c), c.Param("name"))
	c.Status(http.StatusAccepted)
}

func (h *AnalyticsHandlers) TrackBlog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	h.Tracker.RecordBlogRead(ctx, middleware.VisitFrom(c), c.Param("slug"))
	c.Status(http.StatusAccepted)
}

// MarkContactRead answers 204 for known and unknown ids alike.
func (h *AnalyticsHandlers) MarkContactRead(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	id := c.Param("id")
	if !h.Tracker.MarkContactRead(ctx, id) {
		h.log.WithField("contact_id", id).Debug("Mark-as-read for unknown contact ignored")
	}
	c.Status(http.StatusNoContent)
}
