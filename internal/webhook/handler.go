package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aether/internal/chat"
	pkgResponse "aether/pkg/response"
	"aether/pkg/slack"
)

// HandleSlackEvents processes Slack Events API callbacks. Slack
// requires an acknowledgement within three seconds, so message events
// are recorded in the background after a fast 200.
func (h *Handler) HandleSlackEvents(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Slack webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	timestamp := c.GetHeader("X-Slack-Request-Timestamp")
	signature := c.GetHeader("X-Slack-Signature")
	if err := h.security.ValidateSlackSignature(body, timestamp, signature); err != nil {
		h.l.Errorf(ctx, "Slack signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var callback slack.EventCallback
	if err := json.Unmarshal(body, &callback); err != nil {
		h.l.Errorf(ctx, "Failed to parse Slack event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.CheckRateLimit(rateLimitKey(callback)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	switch callback.Type {
	case "url_verification":
		// Slack sends this once when the events URL is configured.
		c.JSON(http.StatusOK, gin.H{"challenge": callback.Challenge})
		return
	case "event_callback":
		h.handleEventCallback(c, callback)
		return
	default:
		h.l.Infof(ctx, "Unsupported Slack callback type: %s", callback.Type)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported callback type"})
		return
	}
}

func (h *Handler) handleEventCallback(c *gin.Context, callback slack.EventCallback) {
	ctx := c.Request.Context()
	event := callback.Event

	if event.Type != "message" {
		h.l.Infof(ctx, "Unsupported Slack event type: %s", event.Type)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	// Bot messages include our own mirrored posts. Recording them
	// would echo every workspace message back into the channel.
	if event.BotID != "" {
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "bot message"})
		return
	}

	go h.recordMessageAsync(event)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// recordMessageAsync persists the Slack message in the background.
func (h *Handler) recordMessageAsync(event slack.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := h.chatUC.RecordSlackMessage(ctx, chat.RecordSlackMessageInput{
		SlackChannelID: event.Channel,
		SlackUserID:    event.User,
		Text:           event.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "Failed to record Slack message from %s: %v", event.Channel, err)
		return
	}

	h.l.Infof(ctx, "Recorded Slack message from channel %s", event.Channel)
}

// rateLimitKey buckets callbacks by Slack team, falling back to a
// shared bucket when the envelope carries no team ID.
func rateLimitKey(callback slack.EventCallback) string {
	if callback.TeamID != "" {
		return callback.TeamID
	}
	return "slack"
}
