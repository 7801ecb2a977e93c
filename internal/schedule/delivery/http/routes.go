package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Both routes
// are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/generate", mw.RateLimit(), h.Generate)
	rg.GET("/analytics", mw.RateLimit(), h.Analytics)
}
