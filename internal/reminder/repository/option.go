package repository

import "time"

type ListDueOptions struct {
	Now   time.Time
	Limit int
}

type MarkSentOptions struct {
	TaskID string
	SentAt time.Time
}
