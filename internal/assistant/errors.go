package assistant

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message is too long")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidHistory  = errors.New("invalid history")
)
