package gemini

import (
	"context"
	"strings"
)

// IGemini calls the generateContent endpoint with function declarations.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name IGemini
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, fills defaults and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}
