package http

import (
	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
	"aether/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. A non-empty due date is validated; hard failures return 400 with the validation result.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request / invalid due date"
// @Failure     404 {object} response.Resp "Project not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(out))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks in the caller's workspace, optionally filtered by project and status.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       project_id query string false "Filter by project"
// @Param       status     query string false "Filter by status (todo/in_progress/done)"
// @Param       limit      query int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
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

	response.OK(c, h.newTaskResp(out))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. A changed due date is re-validated against the date engine.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request / invalid due date"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, middleware.ScopeFromGin(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(out))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromGin(c), id); err != nil {
		h.l.Errorf(ctx, "task.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
