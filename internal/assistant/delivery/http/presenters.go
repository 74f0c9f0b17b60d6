package http

import (
	"task-assistant/internal/assistant"
)

type chatTurnReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type chatReq struct {
	Message  string        `json:"message"  binding:"required"`
	History  []chatTurnReq `json:"history"  binding:"omitempty,max=100,dive"`
	Timezone string        `json:"timezone" example:"Europe/Berlin"`
}

func (r chatReq) toInput() assistant.ChatInput {
	in := assistant.ChatInput{
		Message:  r.Message,
		Timezone: r.Timezone,
	}
	if len(r.History) > 0 {
		in.History = make([]assistant.ChatTurn, len(r.History))
		for i, t := range r.History {
			in.History[i] = assistant.ChatTurn{Role: t.Role, Content: t.Content}
		}
	}
	return in
}

type chatResp struct {
	Response      string                      `json:"response"`
	ToolResults   []assistant.OperationResult `json:"toolResults"`
	ExecutedTools int                         `json:"executedTools"`
}

func (h *handler) newChatResp(o assistant.ChatOutput) chatResp {
	results := o.ToolResults
	if results == nil {
		results = []assistant.OperationResult{}
	}
	return chatResp{
		Response:      o.Response,
		ToolResults:   results,
		ExecutedTools: o.ExecutedTools,
	}
}
