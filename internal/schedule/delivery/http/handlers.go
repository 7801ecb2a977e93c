package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/pkg/response"
)

// Generate godoc
// @Summary     Generate a schedule
// @Description Turns free Indonesian text or a structured activity list into a conflict-free schedule with productivity metrics.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Free text or structured activities"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Analytics godoc
// @Summary     Productivity analytics
// @Description Returns aggregated statistics over the schedule history: totals, top activities and a daily efficiency trend.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} analyticsResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Analytics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAnalyticsResp(output))
}
