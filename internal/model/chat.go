package model

// Channel is a team chat channel. SlackChannelID links it to a Slack
// channel for mirroring.
type Channel struct {
	ID             string `json:"id"`
	WorkspaceID    string `json:"workspace_id"`
	Name           string `json:"name"`
	Topic          string `json:"topic,omitempty"`
	SlackChannelID string `json:"slack_channel_id,omitempty"`
	Demo           bool   `json:"demo,omitempty"`
	CreateTime     string `json:"create_time,omitempty"`
}

// Message is a single chat message in a channel.
type Message struct {
	ID         string `json:"id"`
	ChannelID  string `json:"channel_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	Text       string `json:"text"`
	// Source is "aether" for messages typed in the app and "slack" for
	// messages mirrored in from the Slack events webhook.
	Source     string `json:"source,omitempty"`
	Demo       bool   `json:"demo,omitempty"`
	CreateTime string `json:"create_time,omitempty"`
}
