package preference

import "task-assistant/internal/model"

// UpdateInput is a partial update. Nil fields are left unchanged.
// An empty EmailTemplate or EmailSubject restores the built-in default.
type UpdateInput struct {
	ReminderLeadMinutes *int
	ReminderEnabled     *bool
	Email               *string
	EmailSubject        *string
	EmailTemplate       *string
}

type DetailOutput struct {
	Preference model.Preference
}

type UpdateOutput struct {
	Preference model.Preference
}
