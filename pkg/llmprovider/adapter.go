package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"task-assistant/pkg/gemini"
	"task-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// It serves every OpenAI-compatible provider (openai, deepseek, qwen).
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req.Messages),
		Tools:       convertToOpenAITools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.System = req.SystemInstruction.Text()
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, wrapProviderError(ctx, a.Name(), err)
	}

	return &Response{
		Content:      convertFromOpenAIMessage(resp.Message),
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.client.Provider()
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &gemini.Request{
		Contents: convertToGeminiContents(req.Messages),
	}
	if req.SystemInstruction != nil {
		gReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction.Text()}}}
	}
	if len(req.Tools) > 0 {
		decls := make([]gemini.FunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = gemini.FunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
		}
		gReq.Tools = []gemini.Tool{{FunctionDeclarations: decls}}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		gReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, wrapProviderError(ctx, a.Name(), err)
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.First()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if md := resp.UsageMetadata; md != nil {
		out.Usage = &Usage{
			InputTokens:  md.PromptTokenCount,
			OutputTokens: md.CandidatesTokenCount,
			TotalTokens:  md.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

type rateLimiter interface {
	RateLimited() bool
}

func wrapProviderError(ctx context.Context, provider string, err error) error {
	var rl rateLimiter
	switch {
	case errors.As(err, &rl) && rl.RateLimited():
		err = fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}

// Conversion helpers for OpenAI-compatible providers.
// Outgoing messages are text only; messages without text are dropped.
func convertToOpenAIMessages(msgs []Message) []openai.Message {
	out := make([]openai.Message, 0, len(msgs))
	for _, msg := range msgs {
		if text := msg.Text(); text != "" {
			out = append(out, openai.Message{Role: msg.Role, Content: text})
		}
	}
	return out
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func convertFromOpenAIMessage(msg openai.Message) Message {
	out := Message{Role: RoleAssistant, Parts: []Part{}}
	if msg.Content != "" {
		out.Parts = append(out.Parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		fc := &FunctionCall{ID: tc.ID, Name: tc.Name}
		fc.Args, fc.ArgsError = decodeArguments(tc.Arguments)
		out.Parts = append(out.Parts, Part{FunctionCall: fc})
	}
	return out
}

// decodeArguments parses a tool call's JSON arguments. Empty input is an
// empty object; anything that is not a JSON object is reported as an error.
func decodeArguments(raw string) (map[string]interface{}, string) {
	if raw == "" {
		return map[string]interface{}{}, ""
	}
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Sprintf("malformed arguments: %v", err)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, ""
}

// Conversion helpers for Gemini
func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for _, msg := range msgs {
		role := gemini.RoleUser
		if msg.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		parts := make([]gemini.Part, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			if p.Text != "" {
				parts = append(parts, gemini.Part{Text: p.Text})
			}
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, gemini.Content{Role: role, Parts: parts})
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	out := Message{Role: RoleAssistant, Parts: []Part{}}
	for _, p := range content.Parts {
		if p.Text != "" {
			out.Parts = append(out.Parts, Part{Text: p.Text})
		}
		if p.FunctionCall != nil {
			args := p.FunctionCall.Args
			if args == nil {
				args = map[string]interface{}{}
			}
			out.Parts = append(out.Parts, Part{FunctionCall: &FunctionCall{Name: p.FunctionCall.Name, Args: args}})
		}
	}
	return out
}
