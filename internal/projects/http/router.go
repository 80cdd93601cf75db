package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/NetanelBaruch/Moddo/internal/api/http/middleware"
)

// Register mounts the project workflow routes on the given group.
// Generation endpoints carry a per-user rate limit since each one fans
// out to a slow upstream service.
func Register(g *gin.RouterGroup, h *Handler) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/feedback", h.submitFeedback)
	g.GET("/:id/jobs", h.jobStatus)
	g.GET("/:id/print-file/download", h.downloadPrintFile)

	generate := g.Group("")
	generate.Use(middleware.RateLimitMiddleware(rate.Limit(0.5), 3))
	generate.POST("/:id/concepts", h.generateConcepts)
	generate.POST("/:id/model", h.generateModel)
	generate.POST("/:id/print-file", h.generatePrintFile)
}
