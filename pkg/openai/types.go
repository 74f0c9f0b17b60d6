package openai

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Provider selects the defaults for
// BaseURL and Model; unknown providers must set both explicitly.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.Provider)
	}
	d, known := defaults[c.Provider]
	if c.Model == "" {
		if !known {
			return fmt.Errorf("%s: Model is required", c.Provider)
		}
		c.Model = d.model
	}
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("%s: BaseURL is required", c.Provider)
		}
		c.BaseURL = d.baseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type impl struct {
	provider   string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a provider-neutral chat request.
type Request struct {
	System      string
	Messages    []Message
	Tools       []Tool
	Temperature float64
	MaxTokens   int
}

// Message is one chat message. Role is "user" or "assistant". ToolCalls is
// only populated on responses.
type Message struct {
	Role      string
	Content   string
	ToolCalls []ToolCall
}

// ToolCall is a function call proposed by the model. Arguments is the raw
// JSON string as returned on the wire.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Tool declares a callable function with a JSON Schema for its parameters.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Response is the first choice of a completion.
type Response struct {
	Message Message
	Model   string
	Usage   Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// RateLimited reports whether the upstream rejected the call for quota reasons.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Permanent reports a client error that will fail the same way on retry.
func (e *APIError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}

// Wire types
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Tools       []chatTool    `json:"tools,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
}

type chatTool struct {
	Type     string           `json:"type"`
	Function chatFunctionDecl `json:"function"`
}

type chatFunctionDecl struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type chatToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function chatFunctionCall `json:"function"`
}

type chatFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
