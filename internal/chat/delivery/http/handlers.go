package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/chat"
	"aether/internal/middleware"
	"aether/internal/model"
	"aether/pkg/response"
)

var errMissingID = errors.New("id is required")

// --- Request / Response DTOs ---

type createChannelReq struct {
	Name           string `json:"name"  binding:"required,min=1,max=80"`
	Topic          string `json:"topic" binding:"max=250"`
	SlackChannelID string `json:"slack_channel_id"`
}

type sendMessageReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
}

type channelResp struct {
	Channel model.Channel `json:"channel"`
}

type channelListResp struct {
	Channels []model.Channel `json:"channels"`
	Total    int             `json:"total"`
}

type messageResp struct {
	Message model.Message `json:"message"`
}

type messageListResp struct {
	Messages []model.Message `json:"messages"`
	Total    int             `json:"total"`
}

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrChannelNotFound), errors.Is(err, chat.ErrChannelNotLinked):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}

// CreateChannel godoc
// @Summary     Create a chat channel
// @Description Creates a channel. Setting slack_channel_id links it to a Slack channel for two-way mirroring.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body createChannelReq true "Channel data"
// @Success     200 {object} channelResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/channels [POST]
func (h *handler) CreateChannel(c *gin.Context) {
	ctx := c.Request.Context()

	var req createChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateChannel(ctx, middleware.ScopeFromGin(c), chat.CreateChannelInput{
		Name:           req.Name,
		Topic:          req.Topic,
		SlackChannelID: req.SlackChannelID,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.http.CreateChannel: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, channelResp{Channel: out.Channel})
}

// ListChannels godoc
// @Summary     List chat channels
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} channelListResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/channels [GET]
func (h *handler) ListChannels(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListChannels(ctx, middleware.ScopeFromGin(c), chat.ListChannelsInput{})
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ListChannels: %v", err)
		h.respondError(c, err)
		return
	}

	channels := out.Channels
	if channels == nil {
		channels = []model.Channel{}
	}
	response.OK(c, channelListResp{Channels: channels, Total: out.Total})
}

// SendMessage godoc
// @Summary     Send a message
// @Description Stores the message and mirrors it to the linked Slack channel in the background.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Channel ID"
// @Param       body body sendMessageReq true "Message text"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Channel not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/channels/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SendMessage(ctx, middleware.ScopeFromGin(c), chat.SendMessageInput{
		ChannelID: id,
		Text:      req.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.http.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, messageResp{Message: out.Message})
}

// ListMessages godoc
// @Summary     List messages in a channel
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Channel ID"
// @Param       limit query int    false "Page size (default: 100)"
// @Success     200 {object} messageListResp
// @Failure     404 {object} response.Resp "Channel not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/channels/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	var req struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListMessages(ctx, middleware.ScopeFromGin(c), chat.ListMessagesInput{
		ChannelID: id,
		Limit:     req.Limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ListMessages: %v", err)
		h.respondError(c, err)
		return
	}

	messages := out.Messages
	if messages == nil {
		messages = []model.Message{}
	}
	response.OK(c, messageListResp{Messages: messages, Total: out.Total})
}
