package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
	"aether/internal/project"
	"aether/pkg/dateguard"
	"aether/pkg/response"
)

var errMissingID = errors.New("id is required")

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	var verr *dateguard.ValidationError
	if errors.As(err, &verr) {
		response.Error(c, verr, map[string]interface{}{"validation": verr.Result})
		return
	}

	if errors.Is(err, project.ErrProjectNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalError(c, err)
}

// Create godoc
// @Summary     Create a project
// @Description Creates a project. A non-empty deadline is validated; hard failures return 400 with the validation result.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     200 {object} projectResp
// @Failure     400 {object} response.Resp "Bad Request / invalid deadline"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "project.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProjectResp(out))
}

// List godoc
// @Summary     List projects
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       limit query int false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "project.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get project detail
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} projectResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [GET]
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

	response.OK(c, h.newProjectResp(out))
}

// Update godoc
// @Summary     Update a project
// @Description Partial update. A changed deadline is re-validated against the date engine.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Project ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} projectResp
// @Failure     400 {object} response.Resp "Bad Request / invalid deadline"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [PUT]
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
		h.l.Errorf(ctx, "project.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProjectResp(out))
}

// Delete godoc
// @Summary     Delete a project
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromGin(c), id); err != nil {
		h.l.Errorf(ctx, "project.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
