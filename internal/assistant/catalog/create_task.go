package catalog

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/schema"
)

// CreateTaskOp creates a pending task.
type CreateTaskOp struct{}

type createTaskArgs struct {
	Title                    string   `json:"title"                      validate:"notblank,max=200"`
	Description              string   `json:"description"                validate:"max=2000"`
	Notes                    string   `json:"notes"                      validate:"max=5000"`
	DueAt                    string   `json:"due_at"`
	Priority                 string   `json:"priority"                   validate:"omitempty,oneof=low medium high urgent"`
	Category                 string   `json:"category"                   validate:"omitempty,oneof=work personal health finance shopping education other"`
	Tags                     []string `json:"tags"                       validate:"omitempty,max=20,unique,dive,notblank,max=50"`
	EstimatedDurationMinutes *int     `json:"estimated_duration_minutes" validate:"omitempty,min=1,max=10080"`
}

func (CreateTaskOp) Name() string { return "create_task" }

func (CreateTaskOp) Description() string {
	return "Create a new task for the user. Only the title is required; leave out fields the user did not mention."
}

func (CreateTaskOp) Parameters() map[string]interface{} {
	return objectSchema(taskFieldProps(), "title")
}

func (CreateTaskOp) Bind(v *schema.Validator, args map[string]interface{}, env Env) (Command, error) {
	var a createTaskArgs
	if err := v.Decode(args, &a); err != nil {
		return nil, err
	}

	in := task.CreateInput{
		Title:                    a.Title,
		Description:              a.Description,
		Notes:                    a.Notes,
		Priority:                 model.Priority(a.Priority),
		Category:                 model.Category(a.Category),
		Tags:                     a.Tags,
		EstimatedDurationMinutes: a.EstimatedDurationMinutes,
	}
	if a.DueAt != "" {
		due, err := parseDue(a.DueAt, env)
		if err != nil {
			return nil, err
		}
		in.DueAt = &due
	}

	return CreateTask{Input: in}, nil
}

// CreateTask inserts a task. Status is always pending.
type CreateTask struct {
	Input task.CreateInput
}

func (CreateTask) isCommand() {}

// Execute returns the created model.Task.
func (c CreateTask) Execute(ctx context.Context, s Store) (interface{}, error) {
	return s.Create(ctx, c.Input)
}
