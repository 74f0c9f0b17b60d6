package scope

import "time"

// Manager verifies bearer tokens issued by the identity provider.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
}

// Payload is the identity carried by a verified token.
type Payload struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Config configures HS256 verification. Issuer and Audience are checked
// only when set.
type Config struct {
	Secret    string
	Issuer    string
	Audience  string
	CacheSize int
}

// New creates a Manager. The secret is required.
func New(cfg Config) (Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	return newManager(cfg), nil
}
