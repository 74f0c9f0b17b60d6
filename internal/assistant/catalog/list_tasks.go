package catalog

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/schema"
)

// ListTasksOp returns a filtered view of the caller's tasks.
type ListTasksOp struct{}

type listTasksArgs struct {
	Status    string `json:"status"     validate:"omitempty,oneof=pending done"`
	Search    string `json:"search"     validate:"max=200"`
	DueFilter string `json:"due_filter" validate:"omitempty,oneof=today overdue upcoming"`
}

func (ListTasksOp) Name() string { return "list_tasks" }

func (ListTasksOp) Description() string {
	return "List the user's tasks. All filters are optional and combine with AND. " +
		"due_filter: 'today' is due during the user's current day, 'overdue' is past due and not done, " +
		"'upcoming' is due later and not done."
}

func (ListTasksOp) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"status":     enumProp("Only tasks with this status", enumValues(model.TaskStatuses())),
		"search":     stringProp("Case-insensitive text to look for in title or description"),
		"due_filter": enumProp("Relative due date filter", enumValues(model.DueFilters())),
	})
}

func (ListTasksOp) Bind(v *schema.Validator, args map[string]interface{}, env Env) (Command, error) {
	var a listTasksArgs
	if err := v.Decode(args, &a); err != nil {
		return nil, err
	}
	return ListTasks{Filter: task.FilterOptions{
		Status:    model.TaskStatus(a.Status),
		DueFilter: model.DueFilter(a.DueFilter),
		Search:    a.Search,
		Now:       env.Now,
		Location:  env.Dates.Location(),
	}}, nil
}

// ListTasks fetches the caller's tasks once and filters them in memory.
type ListTasks struct {
	Filter task.FilterOptions
}

// ListResult is the output of ListTasks.
type ListResult struct {
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

func (ListTasks) isCommand() {}

func (c ListTasks) Execute(ctx context.Context, s Store) (interface{}, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks := task.Filter(all, c.Filter)
	return ListResult{Tasks: tasks, Count: len(tasks)}, nil
}
