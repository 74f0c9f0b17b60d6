package preference

import "errors"

var (
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrInvalidPayload     = errors.New("invalid preference payload")
)
