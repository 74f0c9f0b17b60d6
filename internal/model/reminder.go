package model

import "time"

// ReminderCandidate is a pending task whose reminder window is open,
// joined with its owner's delivery settings.
type ReminderCandidate struct {
	TaskID          string
	UserID          string
	TaskTitle       string
	TaskDescription string
	DueAt           time.Time
	Email           string
	LeadMinutes     int
	EmailSubject    string
	EmailTemplate   string
}
