package http

import (
	"study-outline-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ol := rg.Group("/outline")
	{
		ol.POST("/upload", mw.RateLimit(), h.Upload)
	}

	rg.POST("/progress", mw.RateLimit(), h.Progress)
}
