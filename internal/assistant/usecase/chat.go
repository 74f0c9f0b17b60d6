package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/model"
)

// Chat interprets one message: the model proposes operations, each one is
// validated and applied in order, and the outcomes are returned together.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	input.Message = strings.TrimSpace(input.Message)

	loc, err := uc.validate(input)
	if err != nil {
		return assistant.ChatOutput{}, err
	}

	now := uc.now()
	env := catalog.NewEnv(now, loc)
	store := newScopedStore(uc.taskUC, sc)

	proposal := uc.propose(ctx, store, input, loc, now)
	results := uc.execute(ctx, store, env, proposal.Invocations)

	reply := proposal.Message
	if reply == "" {
		reply = composeReply(results)
	}

	uc.l.Infof(ctx, "internal.assistant.usecase.Chat: proposed=%d succeeded=%d", len(results), countSucceeded(results))

	return assistant.ChatOutput{
		Response:      reply,
		ToolResults:   results,
		ExecutedTools: len(proposal.Invocations),
	}, nil
}

func (uc *implUseCase) validate(input assistant.ChatInput) (*time.Location, error) {
	if input.Message == "" {
		return nil, assistant.ErrEmptyMessage
	}
	if utf8.RuneCountInString(input.Message) > assistant.MaxMessageLen {
		return nil, fmt.Errorf("%w: at most %d characters", assistant.ErrMessageTooLong, assistant.MaxMessageLen)
	}

	for i, turn := range input.History {
		if turn.Role != assistant.RoleUser && turn.Role != assistant.RoleAssistant {
			return nil, fmt.Errorf("%w: turn %d has role %q", assistant.ErrInvalidHistory, i, turn.Role)
		}
		if utf8.RuneCountInString(turn.Content) > assistant.MaxTurnContentLen {
			return nil, fmt.Errorf("%w: turn %d is too long", assistant.ErrInvalidHistory, i)
		}
	}

	if input.Timezone == "" {
		return uc.cfg.DefaultLocation, nil
	}
	loc, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", assistant.ErrInvalidTimezone, input.Timezone)
	}
	return loc, nil
}

// composeReply is used when the model proposed operations without any text.
func composeReply(results []assistant.OperationResult) string {
	if len(results) == 0 {
		return emptyReplyMessage
	}
	ok := countSucceeded(results)
	switch {
	case ok == len(results):
		return fmt.Sprintf("Done. %d of %d operation(s) completed.", ok, len(results))
	case ok == 0:
		return "I couldn't complete that. See the details below."
	default:
		return fmt.Sprintf("Partly done. %d of %d operation(s) completed.", ok, len(results))
	}
}

func countSucceeded(results []assistant.OperationResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}
