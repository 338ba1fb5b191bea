package slack

// postMessageRequest is the chat.postMessage request body.
type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// apiResponse is the common Slack Web API response envelope.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	TS    string `json:"ts,omitempty"` // message timestamp, doubles as message ID
}

// Event is a single event from the Slack Events API payload.
type Event struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	User    string `json:"user,omitempty"`
	Text    string `json:"text,omitempty"`
	TS      string `json:"ts,omitempty"`
	BotID   string `json:"bot_id,omitempty"`
}

// EventCallback is the outer Events API envelope posted to the webhook.
type EventCallback struct {
	Type      string `json:"type"` // "url_verification" or "event_callback"
	Token     string `json:"token,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	Event     Event  `json:"event,omitempty"`
}
