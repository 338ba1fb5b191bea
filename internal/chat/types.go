package chat

import "aether/internal/model"

// Message sources.
const (
	SourceAether = "aether"
	SourceSlack  = "slack"
)

// --- UseCase Inputs ---

type CreateChannelInput struct {
	Name           string
	Topic          string
	SlackChannelID string
	Demo           bool
}

type ListChannelsInput struct {
	DemoOnly bool
	Limit    int
}

type SendMessageInput struct {
	ChannelID string
	Text      string
	Demo      bool
}

type ListMessagesInput struct {
	ChannelID string
	Limit     int
}

type RecordSlackMessageInput struct {
	SlackChannelID string
	SlackUserID    string
	Text           string
}

// --- UseCase Outputs ---

type ChannelOutput struct {
	Channel model.Channel
}

type ListChannelsOutput struct {
	Channels []model.Channel
	Total    int
}

type MessageOutput struct {
	Message model.Message
}

type ListMessagesOutput struct {
	Messages []model.Message
	Total    int
}
