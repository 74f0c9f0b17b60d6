package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")
)
