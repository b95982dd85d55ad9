package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio/api/analytics"
)

const (
	SessionHeader = "X-Session-ID"
	visitKey      = "visit"
)

// VisitContext captures who is calling: the session id sent by the frontend and
// the browser's user agent and referrer.
func VisitContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(visitKey, analytics.Visit{
			SessionID: c.GetHeader(SessionHeader),
			UserAgent: c.Request.UserAgent(),
			Referrer:  c.Request.Referer(),
		})
		c.Next()
	}
}

// VisitFrom returns the visit stored by VisitContext, or the zero Visit.
func VisitFrom(c *gin.Context) analytics.Visit {
	if v, ok := c.Get(visitKey); ok {
		if visit, ok := v.(analytics.Visit); ok {
			return visit
		}
	}
	return analytics.Visit{}
}
