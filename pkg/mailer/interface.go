package mailer

import (
	"context"
	"net/http"
	"strings"
)

//go:generate mockery --name IMailer
type IMailer interface {
	// Send delivers msg and returns the provider's message id.
	Send(ctx context.Context, msg Message) (string, error)
}

// New creates a mailer for a Resend-compatible HTTP email API.
func New(cfg Config) (IMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &mailerImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		client:  client,
	}, nil
}
