package catalog

import (
	"context"

	"task-assistant/pkg/schema"
)

// DeleteTaskOp removes a task.
type DeleteTaskOp struct{}

type deleteTaskArgs struct {
	TaskID string `json:"task_id" validate:"notblank"`
}

func (DeleteTaskOp) Name() string { return "delete_task" }

func (DeleteTaskOp) Description() string {
	return "Permanently delete a task by id. Only use when the user clearly asks to remove it."
}

func (DeleteTaskOp) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"task_id": stringProp("Id of the task to delete, taken from the task list"),
	}, "task_id")
}

func (DeleteTaskOp) Bind(v *schema.Validator, args map[string]interface{}, _ Env) (Command, error) {
	var a deleteTaskArgs
	if err := v.Decode(args, &a); err != nil {
		return nil, err
	}
	return DeleteTask{ID: a.TaskID}, nil
}

// DeleteTask removes one task.
type DeleteTask struct {
	ID string
}

// DeleteResult is the output of DeleteTask.
type DeleteResult struct {
	TaskID  string `json:"task_id"`
	Deleted bool   `json:"deleted"`
}

func (DeleteTask) isCommand() {}

func (c DeleteTask) Execute(ctx context.Context, s Store) (interface{}, error) {
	if err := s.Delete(ctx, c.ID); err != nil {
		return nil, notFound(err, c.ID)
	}
	return DeleteResult{TaskID: c.ID, Deleted: true}, nil
}
