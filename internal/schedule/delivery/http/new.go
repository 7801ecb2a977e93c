package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/schedule"
	pkgLog "smart-scheduler/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Analytics(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l pkgLog.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
