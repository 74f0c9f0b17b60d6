package model

import "time"

// Reminder lead time bounds, in minutes.
const (
	ReminderLeadMinMinutes     = 5
	ReminderLeadMaxMinutes     = 1440
	ReminderLeadDefaultMinutes = 30
)

// Preference holds per-user reminder settings. One row per user, created
// by the sign-up trigger in the database, never by this service.
type Preference struct {
	UserID              string    `json:"user_id"`
	ReminderLeadMinutes int       `json:"reminder_lead_minutes"`
	ReminderEnabled     bool      `json:"reminder_enabled"`
	Email               string    `json:"email"`
	EmailSubject        string    `json:"email_subject,omitempty"`
	EmailTemplate       string    `json:"email_template,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
