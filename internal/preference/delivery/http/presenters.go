package http

import (
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/preference"
)

type updateReq struct {
	ReminderLeadMinutes *int    `json:"reminder_lead_minutes" binding:"omitempty,min=5,max=1440"`
	ReminderEnabled     *bool   `json:"reminder_enabled"`
	Email               *string `json:"email"                 binding:"omitempty,max=320"`
	EmailSubject        *string `json:"email_subject"         binding:"omitempty,max=200"`
	EmailTemplate       *string `json:"email_template"        binding:"omitempty,max=20000"`
}

func (r updateReq) toInput() preference.UpdateInput {
	return preference.UpdateInput{
		ReminderLeadMinutes: r.ReminderLeadMinutes,
		ReminderEnabled:     r.ReminderEnabled,
		Email:               r.Email,
		EmailSubject:        r.EmailSubject,
		EmailTemplate:       r.EmailTemplate,
	}
}

type preferenceResp struct {
	ReminderLeadMinutes int       `json:"reminder_lead_minutes"`
	ReminderEnabled     bool      `json:"reminder_enabled"`
	Email               string    `json:"email"`
	EmailSubject        string    `json:"email_subject"`
	EmailTemplate       string    `json:"email_template"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (h *handler) newPreferenceResp(p model.Preference) preferenceResp {
	return preferenceResp{
		ReminderLeadMinutes: p.ReminderLeadMinutes,
		ReminderEnabled:     p.ReminderEnabled,
		Email:               p.Email,
		EmailSubject:        p.EmailSubject,
		EmailTemplate:       p.EmailTemplate,
		UpdatedAt:           p.UpdatedAt,
	}
}
