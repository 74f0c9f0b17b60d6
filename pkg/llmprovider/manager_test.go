package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"task-assistant/pkg/openai"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	block      bool
	response   *Response
	err        error
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger records formatted info and warn lines.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: "Hello"}}}}}
}

func okResponse(name string) *Response {
	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: "Hello from " + name}}},
		ProviderName: name,
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		primaryFails  bool
		fallback      bool
		retries       int
		wantProvider  string
		wantErr       error
		wantPrimary   int
		wantSecondary int
		wantWarn      int
	}{
		{
			name:          "primary succeeds",
			fallback:      true,
			retries:       3,
			wantProvider:  "primary",
			wantPrimary:   1,
			wantSecondary: 0,
		},
		{
			name:          "fallback to secondary",
			primaryFails:  true,
			fallback:      true,
			retries:       2,
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantWarn:      1,
		},
		{
			name:          "no fallback when disabled",
			primaryFails:  true,
			retries:       2,
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 0,
			wantWarn:      1,
		},
		{
			name:          "zero retries still tries once",
			primaryFails:  true,
			fallback:      true,
			retries:       0,
			wantProvider:  "secondary",
			wantPrimary:   1,
			wantSecondary: 1,
			wantWarn:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", shouldFail: tt.primaryFails, response: okResponse("primary")}
			secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
			logger := &mockLogger{}

			m := NewManager([]Provider{primary, secondary}, &Config{
				FallbackEnabled: tt.fallback,
				RetryAttempts:   tt.retries,
				RetryDelay:      time.Millisecond,
			}, logger)

			resp, err := m.GenerateContent(context.Background(), helloRequest())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info line, got %d", len(logger.infoMessages))
				}
			}

			if primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", primary.callCount, tt.wantPrimary)
			}
			if secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", secondary.callCount, tt.wantSecondary)
			}
			if len(logger.warnMessages) != tt.wantWarn {
				t.Errorf("warn lines = %d, want %d", len(logger.warnMessages), tt.wantWarn)
			}
		})
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}
	logger := &mockLogger{}

	m := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	_, err := m.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("calls = %d/%d, want 2/2", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("expected 2 warn lines, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	m := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", block: true}
	never := &mockProvider{name: "never", response: okResponse("never")}

	m := NewManager([]Provider{slow, never}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("expected ErrProviderTimeout, got %v", err)
	}
	if never.callCount != 0 {
		t.Errorf("fallback provider should not run after the deadline, got %d calls", never.callCount)
	}
}

func TestGenerateContent_NilUsage(t *testing.T) {
	p := &mockProvider{name: "p", response: &Response{ProviderName: "p"}}
	logger := &mockLogger{}

	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, logger)
	if _, err := m.GenerateContent(context.Background(), helloRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("expected success to be logged")
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &mockProvider{name: "p", response: okResponse("p")}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	for _, req := range []*Request{nil, {}} {
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	}
	if p.callCount != 0 {
		t.Errorf("provider should not be called, got %d calls", p.callCount)
	}
}

func TestGenerateContent_PermanentErrorSkipsRetries(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int
	}{
		{"unauthorized is not retried", http.StatusUnauthorized, 1},
		{"bad request is not retried", http.StatusBadRequest, 1},
		{"server error is retried", http.StatusBadGateway, 3},
		{"rate limit is retried", http.StatusTooManyRequests, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", err: &ProviderError{
				Provider: "primary",
				Err:      &openai.APIError{Provider: "openai", StatusCode: tt.status},
			}}
			secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}

			m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})
			resp, err := m.GenerateContent(context.Background(), helloRequest())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.ProviderName != "secondary" {
				t.Errorf("expected fallback to secondary, got %s", resp.ProviderName)
			}
			if primary.callCount != tt.wantCalls {
				t.Errorf("primary calls = %d, want %d", primary.callCount, tt.wantCalls)
			}
		})
	}
}
