package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/schedule"
	"smart-scheduler/pkg/response"
)

// mapError translates domain errors into HTTP responses. Validation
// failures are the caller's fault; everything else is ours.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrEmptyInput),
		errors.Is(err, schedule.ErrNoActivities),
		errors.Is(err, schedule.ErrInvalidActivity):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
