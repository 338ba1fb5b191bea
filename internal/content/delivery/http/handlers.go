package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/content"
	"aether/internal/middleware"
	"aether/internal/model"
	"aether/pkg/dateguard"
	"aether/pkg/response"
)

var errMissingID = errors.New("id is required")

// --- Request / Response DTOs ---

type socialPostReq struct {
	Platform string `json:"platform" binding:"omitempty,oneof=linkedin x facebook instagram"`
	Topic    string `json:"topic"    binding:"required,min=3,max=500"`
	Tone     string `json:"tone"     binding:"omitempty,max=50"`
}

type websiteAuditReq struct {
	URL   string `json:"url"   binding:"required,url"`
	Notes string `json:"notes" binding:"max=2000"`
}

type meetingSummaryReq struct {
	Notes string `json:"notes" binding:"required,min=10"`
}

type schedulePostReq struct {
	PublishAt string `json:"publish_at" binding:"required"`
}

type postResp struct {
	Post       model.ScheduledPost `json:"post"`
	Validation *dateguard.Result   `json:"validation,omitempty"`
}

type postListResp struct {
	Posts []model.ScheduledPost `json:"posts"`
	Total int                   `json:"total"`
}

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	var verr *dateguard.ValidationError
	if errors.As(err, &verr) {
		response.Error(c, verr, map[string]interface{}{"validation": verr.Result})
		return
	}

	if errors.Is(err, content.ErrPostNotFound) {
		response.NotFound(c, err)
		return
	}
	response.InternalError(c, err)
}

// GenerateSocialPost godoc
// @Summary     Generate a social media post
// @Description Drafts a post with the configured LLM providers and stores it as a draft.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body socialPostReq true "Generation input"
// @Success     200 {object} postResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Generation failed"
// @Router      /api/v1/ai/social-post [POST]
func (h *handler) GenerateSocialPost(c *gin.Context) {
	ctx := c.Request.Context()

	var req socialPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GenerateSocialPost(ctx, middleware.ScopeFromGin(c), content.GenerateSocialPostInput{
		Platform: req.Platform,
		Topic:    req.Topic,
		Tone:     req.Tone,
	})
	if err != nil {
		h.l.Errorf(ctx, "content.http.GenerateSocialPost: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, postResp{Post: out.Post})
}

// GenerateWebsiteAudit godoc
// @Summary     Audit a website
// @Description Produces a structured audit (score + findings) of the given URL.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body websiteAuditReq true "Audit input"
// @Success     200 {object} content.AuditOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Generation failed"
// @Router      /api/v1/ai/website-audit [POST]
func (h *handler) GenerateWebsiteAudit(c *gin.Context) {
	ctx := c.Request.Context()

	var req websiteAuditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GenerateWebsiteAudit(ctx, middleware.ScopeFromGin(c), content.GenerateAuditInput{
		URL:   req.URL,
		Notes: req.Notes,
	})
	if err != nil {
		h.l.Errorf(ctx, "content.http.GenerateWebsiteAudit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// SummarizeMeetingNotes godoc
// @Summary     Summarize meeting notes
// @Description Summarizes notes into action items with resolved follow-up dates; books the next meeting when a calendar is configured.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body meetingSummaryReq true "Raw notes"
// @Success     200 {object} content.MeetingSummaryOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Generation failed"
// @Router      /api/v1/ai/meeting-summary [POST]
func (h *handler) SummarizeMeetingNotes(c *gin.Context) {
	ctx := c.Request.Context()

	var req meetingSummaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SummarizeMeetingNotes(ctx, middleware.ScopeFromGin(c), content.SummarizeNotesInput{
		Notes: req.Notes,
	})
	if err != nil {
		h.l.Errorf(ctx, "content.http.SummarizeMeetingNotes: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, out)
}

// SchedulePost godoc
// @Summary     Schedule a post
// @Description Sets a publish time (validated with minute precision) and flips the post to scheduled.
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Post ID"
// @Param       body body schedulePostReq true "Publish time"
// @Success     200 {object} postResp
// @Failure     400 {object} response.Resp "Bad Request / invalid publish time"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/posts/{id}/schedule [POST]
func (h *handler) SchedulePost(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	var req schedulePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SchedulePost(ctx, middleware.ScopeFromGin(c), content.SchedulePostInput{
		PostID:    id,
		PublishAt: req.PublishAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "content.http.SchedulePost: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, postResp{Post: out.Post, Validation: out.Validation})
}

// ListPosts godoc
// @Summary     List posts
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (draft/scheduled/published)"
// @Param       limit  query int    false "Page size (default: 100)"
// @Success     200 {object} postListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/posts [GET]
func (h *handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Status string `form:"status" binding:"omitempty,oneof=draft scheduled published"`
		Limit  int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListPosts(ctx, middleware.ScopeFromGin(c), content.ListPostsInput{
		Status: model.PostStatus(req.Status),
		Limit:  req.Limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "content.http.ListPosts: %v", err)
		h.respondError(c, err)
		return
	}

	posts := out.Posts
	if posts == nil {
		posts = []model.ScheduledPost{}
	}
	response.OK(c, postListResp{Posts: posts, Total: out.Total})
}
