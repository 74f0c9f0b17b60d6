package catalog

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/schema"
)

// UpdateTaskOp changes fields of an existing task.
type UpdateTaskOp struct{}

type updateTaskArgs struct {
	TaskID                   string   `json:"task_id"                    validate:"notblank"`
	Title                    *string  `json:"title"                      validate:"omitempty,notblank,max=200"`
	Description              *string  `json:"description"                validate:"omitempty,max=2000"`
	Notes                    *string  `json:"notes"                      validate:"omitempty,max=5000"`
	DueAt                    *string  `json:"due_at"`
	Status                   *string  `json:"status"                     validate:"omitempty,oneof=pending done"`
	Priority                 *string  `json:"priority"                   validate:"omitempty,oneof=low medium high urgent"`
	Category                 *string  `json:"category"                   validate:"omitempty,oneof=work personal health finance shopping education other"`
	Tags                     []string `json:"tags"                       validate:"omitempty,max=20,unique,dive,notblank,max=50"`
	EstimatedDurationMinutes *int     `json:"estimated_duration_minutes" validate:"omitempty,min=1,max=10080"`
}

func (UpdateTaskOp) Name() string { return "update_task" }

func (UpdateTaskOp) Description() string {
	return "Update an existing task by id. Only send the fields that change. " +
		"Set status to 'done' to complete a task. An empty due_at removes the due date. " +
		"tags replaces the whole tag list."
}

func (UpdateTaskOp) Parameters() map[string]interface{} {
	props := taskFieldProps()
	props["task_id"] = stringProp("Id of the task to update, taken from the task list")
	props["status"] = enumProp("New status", enumValues(model.TaskStatuses()))
	return objectSchema(props, "task_id")
}

func (UpdateTaskOp) Bind(v *schema.Validator, args map[string]interface{}, env Env) (Command, error) {
	var a updateTaskArgs
	if err := v.Decode(args, &a); err != nil {
		return nil, err
	}

	in := task.UpdateInput{
		ID:                       a.TaskID,
		Title:                    a.Title,
		Description:              a.Description,
		Notes:                    a.Notes,
		Tags:                     a.Tags,
		EstimatedDurationMinutes: a.EstimatedDurationMinutes,
	}
	if a.Status != nil {
		s := model.TaskStatus(*a.Status)
		in.Status = &s
	}
	if a.Priority != nil {
		p := model.Priority(*a.Priority)
		in.Priority = &p
	}
	if a.Category != nil {
		c := model.Category(*a.Category)
		in.Category = &c
	}
	if a.DueAt != nil {
		if *a.DueAt == "" {
			in.ClearDueAt = true
		} else {
			due, err := parseDue(*a.DueAt, env)
			if err != nil {
				return nil, err
			}
			in.DueAt = &due
		}
	}

	return UpdateTask{Input: in}, nil
}

// UpdateTask applies a partial update.
type UpdateTask struct {
	Input task.UpdateInput
}

func (UpdateTask) isCommand() {}

// Execute returns the updated model.Task.
func (c UpdateTask) Execute(ctx context.Context, s Store) (interface{}, error) {
	t, err := s.Update(ctx, c.Input)
	if err != nil {
		return nil, notFound(err, c.Input.ID)
	}
	return t, nil
}
