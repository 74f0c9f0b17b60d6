package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCacheSize = 10000
	cacheTTL         = 5 * time.Minute
)

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type implManager struct {
	secret   []byte
	issuer   string
	audience string
	parser   *jwt.Parser
	cache    *expirable.LRU[string, Payload]
	now      func() time.Time
}

func newManager(cfg Config) *implManager {
	return &implManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		cache:    expirable.NewLRU[string, Payload](cfg.CacheSize, nil, cacheTTL),
		now:      time.Now,
	}
}

// Verify checks the signature and standard claims of token. Successful
// results are cached until the token expires or the cache TTL passes.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, ErrInvalidToken
	}

	if p, ok := m.cache.Get(token); ok {
		if m.now().Before(p.ExpiresAt) {
			return p, nil
		}
		m.cache.Remove(token)
		return Payload{}, ErrExpiredToken
	}

	var c claims
	_, err := m.parser.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if c.Subject == "" {
		return Payload{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if c.ExpiresAt == nil {
		return Payload{}, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	if m.issuer != "" && !c.VerifyIssuer(m.issuer, true) {
		return Payload{}, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}
	if m.audience != "" && !c.VerifyAudience(m.audience, true) {
		return Payload{}, fmt.Errorf("%w: unexpected audience", ErrInvalidToken)
	}

	p := Payload{UserID: c.Subject, Email: c.Email, ExpiresAt: c.ExpiresAt.Time}
	m.cache.Add(token, p)
	return p, nil
}
