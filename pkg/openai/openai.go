package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newImpl(cfg Config) *impl {
	return &impl{
		provider:   cfg.Provider,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

func (c *impl) Model() string    { return c.model }
func (c *impl) Provider() string { return c.provider }

// GenerateContent posts a chat completion and returns the first choice.
func (c *impl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.toWire(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.provider, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{Provider: c.provider, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.provider, err)
	}

	return c.fromWire(&out), nil
}

func (c *impl) toWire(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.System != "" {
		out.Messages = append(out.Messages, chatMessage{Role: roleSystem, Content: req.System})
	}

	for _, m := range req.Messages {
		out.Messages = append(out.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	for _, t := range req.Tools {
		out.Tools = append(out.Tools, chatTool{
			Type: toolType,
			Function: chatFunctionDecl{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	return out
}

func (c *impl) fromWire(resp *chatResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.Model == "" {
		out.Model = c.model
	}
	if len(resp.Choices) == 0 {
		return out
	}

	msg := resp.Choices[0].Message
	out.Message = Message{Role: msg.Role, Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != toolType {
			continue
		}
		out.Message.ToolCalls = append(out.Message.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}
