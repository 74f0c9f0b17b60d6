package mailer

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("mailer: api key is required")
	ErrInvalidFrom   = errors.New("mailer: invalid from address")
	ErrInvalidTo     = errors.New("mailer: invalid recipient address")
	ErrEmptySubject  = errors.New("mailer: subject is required")
)

type Config struct {
	BaseURL    string
	APIKey     string
	From       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if _, err := mail.ParseAddress(c.From); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFrom, err)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

type Message struct {
	To      string
	Subject string
	HTML    string
}

type mailerImpl struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mailer: api returned %d: %s", e.StatusCode, e.Body)
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}
