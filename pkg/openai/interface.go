package openai

import "context"

// IOpenAI is a client for any chat-completions endpoint that speaks the
// OpenAI wire format. Implementations are safe for concurrent use.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
	Provider() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newImpl(cfg), nil
}
