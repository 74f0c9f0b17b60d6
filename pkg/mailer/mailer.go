package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
)

const maxErrorBody = 1024

func (m *mailerImpl) Send(ctx context.Context, msg Message) (string, error) {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTo, err)
	}
	if msg.Subject == "" {
		return "", ErrEmptySubject
	}

	body, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mailer: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailer: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("mailer: decode response: %w", err)
	}
	return out.ID, nil
}
