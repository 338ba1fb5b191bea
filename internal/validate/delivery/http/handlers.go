package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/validate"
	"aether/pkg/response"
)

// Date godoc
// @Summary     Validate a date
// @Description Runs the date engine on a candidate date with the given rule set. Hard failures are reported inside the result body, not as HTTP errors.
// @Tags        Validation
// @Accept      json
// @Produce     json
// @Param       body body validateDateReq true "Candidate date and rules"
// @Success     200 {object} dateguard.Result
// @Failure     400 {object} response.Resp "Malformed request / unknown context / bad bound"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/validate/date [POST]
func (h *handler) Date(c *gin.Context) {
	ctx := c.Request.Context()

	var req validateDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.ValidateDate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "validate.http.Date: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, res)
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrBadContext), errors.Is(err, validate.ErrBadBound):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
