package usecase

import (
	"context"
	"strings"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/pkg/llmprovider"
)

// propose asks the model what to do. It never mutates tasks and never
// fails: any upstream error degrades to FallbackMessage with no invocations.
func (uc *implUseCase) propose(ctx context.Context, store catalog.Store, input assistant.ChatInput, loc *time.Location, now time.Time) assistant.Proposal {
	tasks, err := store.List(ctx)
	available := err == nil
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.propose.List: %v", err)
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: buildSystemPrompt(now, loc, tasks, available, uc.cfg.MaxContextTasks)}},
		},
		Messages:    uc.buildMessages(input),
		Tools:       uc.registry.Tools(),
		Temperature: uc.cfg.Temperature,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.propose.GenerateContent: %v", err)
		return assistant.Proposal{Message: FallbackMessage}
	}
	if resp == nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.propose.GenerateContent: empty response")
		return assistant.Proposal{Message: FallbackMessage}
	}

	return uc.parseProposal(resp.Content)
}

// buildMessages forwards the most recent history turns, then the new message.
func (uc *implUseCase) buildMessages(input assistant.ChatInput) []llmprovider.Message {
	history := input.History
	if len(history) > uc.cfg.MaxHistory {
		history = history[len(history)-uc.cfg.MaxHistory:]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleUser
		if turn.Role == assistant.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: turn.Content}}})
	}
	return append(msgs, llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: input.Message}},
	})
}

func (uc *implUseCase) parseProposal(content llmprovider.Message) assistant.Proposal {
	p := assistant.Proposal{Message: strings.TrimSpace(content.Text())}
	for _, fc := range content.FunctionCalls() {
		id := fc.ID
		if id == "" {
			id = uc.newID()
		}
		p.Invocations = append(p.Invocations, assistant.Invocation{
			ID:        id,
			Name:      fc.Name,
			Args:      fc.Args,
			ArgsError: fc.ArgsError,
		})
	}
	return p
}
