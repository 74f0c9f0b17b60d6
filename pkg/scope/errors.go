package scope

import "errors"

var (
	ErrMissingSecret = errors.New("scope: secret is required")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
)
