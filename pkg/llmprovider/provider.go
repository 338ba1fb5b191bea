package llmprovider

import "context"

// Provider is the interface all LLM backends implement.
type Provider interface {
	// GenerateContent sends a generation request and returns a response.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "gemini", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Message is a normalized conversation message.
type Message struct {
	Role string // "user", "assistant", "system"
	Text string
}

// Request is a normalized LLM generation request.
type Request struct {
	System      string // system prompt, may be empty
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is a normalized LLM generation response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}
