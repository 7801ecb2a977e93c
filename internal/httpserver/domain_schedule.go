package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	scheduleHTTP "smart-scheduler/internal/schedule/delivery/http"
)

// setupScheduleDomain wires the schedule domain routes under /api/v1/schedule.
func (srv *HTTPServer) setupScheduleDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(context.Background(), "schedule domain registered")
}
