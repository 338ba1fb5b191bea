package chat

import (
	"context"

	"aether/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateChannel(ctx context.Context, sc model.Scope, input CreateChannelInput) (ChannelOutput, error)
	ListChannels(ctx context.Context, sc model.Scope, input ListChannelsInput) (ListChannelsOutput, error)

	// SendMessage stores a message and, when the channel is linked to a
	// Slack channel, mirrors it to Slack in the background.
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (MessageOutput, error)
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)

	// RecordSlackMessage ingests a message that originated in Slack
	// (via the events webhook) into the linked channel. It is never
	// mirrored back.
	RecordSlackMessage(ctx context.Context, input RecordSlackMessageInput) (MessageOutput, error)
}
