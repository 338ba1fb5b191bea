package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/lead"
	"aether/internal/middleware"
	"aether/pkg/response"
)

var errMissingID = errors.New("id is required")

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lead.ErrLeadNotFound):
		response.NotFound(c, err)
	case errors.Is(err, lead.ErrHubSpotNotEnabled):
		response.Conflict(c, err)
	default:
		response.InternalError(c, err)
	}
}

// Create godoc
// @Summary     Create a lead
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Lead data"
// @Success     200 {object} leadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "lead.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLeadResp(out))
}

// List godoc
// @Summary     List leads
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       stage query string false "Filter by pipeline stage"
// @Param       limit query int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "lead.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get lead detail
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       id path string true "Lead ID"
// @Success     200 {object} leadResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.Detail(ctx, middleware.ScopeFromGin(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLeadResp(out))
}

// Update godoc
// @Summary     Update a lead
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Lead ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} leadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.Update(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "lead.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLeadResp(out))
}

// Delete godoc
// @Summary     Delete a lead
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       id path string true "Lead ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromGin(c), id); err != nil {
		h.l.Errorf(ctx, "lead.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Sync godoc
// @Summary     Sync a lead to HubSpot
// @Description Pushes the lead to HubSpot as a CRM contact. Creates on first sync, patches afterwards.
// @Tags        Leads
// @Accept      json
// @Produce     json
// @Param       id path string true "Lead ID"
// @Success     200 {object} leadResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "HubSpot sync not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leads/{id}/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	out, err := h.uc.SyncToHubSpot(ctx, middleware.ScopeFromGin(c), id)
	if err != nil {
		h.l.Errorf(ctx, "lead.http.Sync: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLeadResp(out))
}
