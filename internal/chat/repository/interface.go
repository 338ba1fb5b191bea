package repository

import (
	"context"

	"aether/internal/model"
)

// Repository is the interface for chat persistence (channels and
// messages).
type Repository interface {
	CreateChannel(ctx context.Context, opt CreateChannelOptions) (model.Channel, error)
	GetChannel(ctx context.Context, id string) (model.Channel, error)
	GetChannelBySlackID(ctx context.Context, slackChannelID string) (model.Channel, error)
	ListChannels(ctx context.Context, opt ListChannelsOptions) ([]model.Channel, error)
	DeleteChannel(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
	DeleteMessage(ctx context.Context, id string) error
}
