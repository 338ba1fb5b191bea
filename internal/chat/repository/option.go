package repository

// CreateChannelOptions holds the parameters for creating a channel.
type CreateChannelOptions struct {
	WorkspaceID    string
	Name           string
	Topic          string
	SlackChannelID string
	Demo           bool
}

// ListChannelsOptions holds the parameters for listing channels.
type ListChannelsOptions struct {
	WorkspaceID string
	DemoOnly    bool
	Limit       int
}

// CreateMessageOptions holds the parameters for creating a message.
type CreateMessageOptions struct {
	ChannelID  string
	AuthorID   string
	AuthorName string
	Text       string
	Source     string
	Demo       bool
}

// ListMessagesOptions holds the parameters for listing messages.
type ListMessagesOptions struct {
	ChannelID string
	DemoOnly  bool
	Limit     int
}
