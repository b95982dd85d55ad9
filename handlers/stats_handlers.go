package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/utils"
)

// windowFrom reads ?range=7d|30d|90d; anything else means 7 days.
func windowFrom(c *gin.Context) int {
	return utils.ParseTimeRange(c.DefaultQuery("range", "7d"))
}

func (h *AnalyticsHandlers) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.Tracker.Aggregate(windowFrom(c)))
}

// GetContacts lists the newest contacts in the window and their hour-of-day spread.
func (h *AnalyticsHandlers) GetContacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Tracker.ContactReport(windowFrom(c)))
}

func (h *AnalyticsHandlers) GetPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.Tracker.Performance())
}

// ExportStats serves the export document as a file download.
func (h *AnalyticsHandlers) ExportStats(c *gin.Context) {
	window := windowFrom(c)

	data, filename, err := h.Tracker.Export(window)
	if err != nil {
		h.log.WithError(err).Error("Error building analytics export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ClearStats wipes all recorded data. There is no undo.
func (h *AnalyticsHandlers) ClearStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.Tracker.Clear(ctx); err != nil {
		// Memory is already empty; report that the stored copy may still hold data.
		c.JSON(http.StatusAccepted, gin.H{"message": "Analytics cleared in memory", "warning": "persisting the cleared store failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
