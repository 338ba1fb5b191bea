package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
	"aether/internal/seed"
	"aether/pkg/response"
)

// Seed godoc
// @Summary     Seed demo data
// @Description Populates the workspace with demo projects, tasks, leads, channels, messages and posts. Steps run in order; the response reports per-step status.
// @Tags        Demo Data
// @Produce     json
// @Success     200 {object} seed.StatusOutput
// @Failure     409 {object} response.Resp "Already seeded / a run is in progress"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/seed [POST]
func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Seed(ctx, middleware.ScopeFromGin(c))
	if err != nil {
		h.l.Errorf(ctx, "seed.http.Seed: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// Remove godoc
// @Summary     Remove demo data
// @Description Deletes all seeded demo data, children before parents. A halted run can be retried.
// @Tags        Demo Data
// @Produce     json
// @Success     200 {object} seed.StatusOutput
// @Failure     409 {object} response.Resp "Not seeded / a run is in progress"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/seed [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Remove(ctx, middleware.ScopeFromGin(c))
	if err != nil {
		h.l.Errorf(ctx, "seed.http.Remove: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// Status godoc
// @Summary     Demo data status
// @Description Reports whether demo data is present, whether a run is in progress, and the steps of the most recent run.
// @Tags        Demo Data
// @Produce     json
// @Success     200 {object} seed.StatusOutput
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/seed/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Status(ctx, middleware.ScopeFromGin(c))
	if err != nil {
		h.l.Errorf(ctx, "seed.http.Status: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, seed.ErrAlreadySeeded),
		errors.Is(err, seed.ErrNotSeeded),
		errors.Is(err, seed.ErrBusy):
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}
