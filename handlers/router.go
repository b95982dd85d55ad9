package handlers

import (
	"github.com/gin-gonic/gin"

	"portfolio/api/middleware"
)

// NewRouter wires the analytics routes onto r.
func NewRouter(r *gin.Engine, h *AnalyticsHandlers, origin string) *gin.Engine {
	r.Use(middleware.CORSMiddleware(origin))

	r.GET("/health", Health)

	api := r.Group("/api")
	api.Use(middleware.VisitContext())
	{
		api.POST("/sessions", h.StartSession)

		track := api.Group("/track")
		{
			track.POST("/page-view", h.TrackPageView)
			track.POST("/contact", h.TrackContact)
			track.POST("/demo/:name", h.TrackDemo)
			track.POST("/project/:name", h.TrackProject)
			track.POST("/blog/:slug", h.TrackBlog)
		}

		api.PATCH("/contacts/:id/read", h.MarkContactRead)

		stats := api.Group("/stats")
		{
			stats.GET("/overview", h.GetOverview)
			stats.GET("/contacts", h.GetContacts)
			stats.GET("/performance", h.GetPerformance)
			stats.GET("/export", h.ExportStats)
			stats.DELETE("", h.ClearStats)
		}
	}

	return r
}
