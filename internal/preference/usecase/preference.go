package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/preference"
	repo "task-assistant/internal/preference/repository"
)

// Detail returns the caller's preferences.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (preference.DetailOutput, error) {
	p, err := uc.repo.GetOnePreference(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.preference.usecase.Detail.GetOnePreference: %v", err)
		return preference.DetailOutput{}, err
	}
	if p.UserID == "" {
		return preference.DetailOutput{}, preference.ErrPreferenceNotFound
	}
	return preference.DetailOutput{Preference: p}, nil
}

// Update applies a partial update to the caller's preferences.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input preference.UpdateInput) (preference.UpdateOutput, error) {
	existing, err := uc.repo.GetOnePreference(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.preference.usecase.Update.GetOnePreference: %v", err)
		return preference.UpdateOutput{}, err
	}
	if existing.UserID == "" {
		return preference.UpdateOutput{}, preference.ErrPreferenceNotFound
	}

	opt := repo.UpdatePreferenceOptions{
		UserID:              sc.UserID,
		ReminderLeadMinutes: existing.ReminderLeadMinutes,
		ReminderEnabled:     existing.ReminderEnabled,
		Email:               existing.Email,
		EmailSubject:        existing.EmailSubject,
		EmailTemplate:       existing.EmailTemplate,
	}
	if input.ReminderLeadMinutes != nil {
		opt.ReminderLeadMinutes = *input.ReminderLeadMinutes
	}
	if input.ReminderEnabled != nil {
		opt.ReminderEnabled = *input.ReminderEnabled
	}
	if input.Email != nil {
		opt.Email = strings.TrimSpace(*input.Email)
	} else if opt.Email == "" {
		// Rows created at sign-up carry no recipient yet.
		opt.Email = sc.Email
	}
	if input.EmailSubject != nil {
		opt.EmailSubject = *input.EmailSubject
	}
	if input.EmailTemplate != nil {
		opt.EmailTemplate = *input.EmailTemplate
	}

	if err := validate(opt); err != nil {
		return preference.UpdateOutput{}, err
	}

	p, err := uc.repo.UpdatePreference(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.preference.usecase.Update.UpdatePreference: %v", err)
		return preference.UpdateOutput{}, err
	}
	if p.UserID == "" {
		return preference.UpdateOutput{}, preference.ErrPreferenceNotFound
	}
	return preference.UpdateOutput{Preference: p}, nil
}

func validate(opt repo.UpdatePreferenceOptions) error {
	if opt.ReminderLeadMinutes < model.ReminderLeadMinMinutes || opt.ReminderLeadMinutes > model.ReminderLeadMaxMinutes {
		return fmt.Errorf("%w: reminder_lead_minutes must be between %d and %d",
			preference.ErrInvalidPayload, model.ReminderLeadMinMinutes, model.ReminderLeadMaxMinutes)
	}
	if opt.Email != "" {
		if _, err := mail.ParseAddress(opt.Email); err != nil {
			return fmt.Errorf("%w: invalid email", preference.ErrInvalidPayload)
		}
	}
	if opt.ReminderEnabled && opt.Email == "" {
		return fmt.Errorf("%w: email is required when reminders are enabled", preference.ErrInvalidPayload)
	}
	return preference.ValidateTemplates(opt.EmailSubject, opt.EmailTemplate)
}
