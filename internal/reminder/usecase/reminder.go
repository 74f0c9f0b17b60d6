package usecase

import (
	"context"
	"fmt"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/preference"
	"task-assistant/internal/reminder"
	"task-assistant/internal/reminder/repository"
	"task-assistant/pkg/mailer"
)

const dueAtLayout = "Mon, 02 Jan 2006 15:04 MST"

func (uc *implUseCase) SendDue(ctx context.Context) (reminder.SendDueOutput, error) {
	now := uc.now().UTC()

	candidates, err := uc.repo.ListDue(ctx, repository.ListDueOptions{Now: now, Limit: uc.batchSize})
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.SendDue.ListDue: %v", err)
		return reminder.SendDueOutput{}, err
	}

	out := reminder.SendDueOutput{Candidates: len(candidates)}
	for _, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		if err := uc.sendOne(ctx, c, now); err != nil {
			uc.l.Warnf(ctx, "internal.reminder.usecase.SendDue: task %s: %v", c.TaskID, err)
			out.Failed++
			continue
		}
		out.Sent++
	}

	return out, ctx.Err()
}

func (uc *implUseCase) sendOne(ctx context.Context, c model.ReminderCandidate, now time.Time) error {
	subject, body, err := preference.RenderEmail(c.EmailSubject, c.EmailTemplate, preference.EmailData{
		TaskID:          c.TaskID,
		TaskTitle:       c.TaskTitle,
		TaskDescription: c.TaskDescription,
		DueAt:           c.DueAt.UTC().Format(dueAtLayout),
		LeadMinutes:     c.LeadMinutes,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if _, err := uc.mailer.Send(ctx, mailer.Message{To: c.Email, Subject: subject, HTML: body}); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	marked, err := uc.repo.MarkSent(ctx, repository.MarkSentOptions{TaskID: c.TaskID, SentAt: now})
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	if !marked {
		uc.l.Warnf(ctx, "internal.reminder.usecase.sendOne: task %s was already stamped", c.TaskID)
	}
	return nil
}
