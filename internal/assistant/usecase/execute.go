package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/catalog"
	"task-assistant/internal/task"
)

const storeFailureMessage = "task store error"

// execute applies each invocation in order. A failing invocation never
// stops the ones after it.
func (uc *implUseCase) execute(ctx context.Context, store catalog.Store, env catalog.Env, invocations []assistant.Invocation) []assistant.OperationResult {
	results := make([]assistant.OperationResult, 0, len(invocations))
	for _, inv := range invocations {
		results = append(results, uc.executeOne(ctx, store, env, inv))
	}
	return results
}

func (uc *implUseCase) executeOne(ctx context.Context, store catalog.Store, env catalog.Env, inv assistant.Invocation) (res assistant.OperationResult) {
	res = assistant.OperationResult{ToolCallID: inv.ID, Name: inv.Name}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.assistant.usecase.executeOne: panic in %s: %v", inv.Name, r)
			res = assistant.OperationResult{
				ToolCallID: inv.ID,
				Name:       inv.Name,
				Error:      fmt.Sprintf("internal error while running %s", inv.Name),
			}
		}
	}()

	if inv.ArgsError != "" {
		if _, ok := uc.registry.Get(inv.Name); !ok {
			res.Error = fmt.Sprintf("%v: %s", catalog.ErrUnknownOperation, inv.Name)
			return res
		}
		res.Error = fmt.Sprintf("%v: %s", catalog.ErrInvalidArguments, inv.ArgsError)
		return res
	}

	cmd, err := uc.registry.Bind(inv.Name, inv.Args, env)
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.executeOne.Bind: %v", err)
		res.Error = err.Error()
		return res
	}

	out, err := cmd.Execute(ctx, store)
	if err != nil {
		res.Error = uc.describeStoreError(ctx, inv.Name, err)
		return res
	}

	res.Success = true
	res.Result = out
	return res
}

// describeStoreError keeps domain errors readable and hides everything else.
func (uc *implUseCase) describeStoreError(ctx context.Context, name string, err error) string {
	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrInvalidPayload):
		return err.Error()
	default:
		uc.l.Errorf(ctx, "internal.assistant.usecase.executeOne.%s: %v", name, err)
		return storeFailureMessage
	}
}
