// Package catalog defines the operations the assistant may propose against
// the task store. It is both the menu sent to the model and the validator
// that turns untrusted model arguments into typed commands.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/schema"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Store is the task store seen by commands, already bounded to the caller.
type Store interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, input task.CreateInput) (model.Task, error)
	Update(ctx context.Context, input task.UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error
}

// Env is the request context arguments are interpreted in.
type Env struct {
	Now   time.Time
	Dates *datemath.Parser
}

// NewEnv builds an Env for the caller's time zone. A nil loc means UTC.
func NewEnv(now time.Time, loc *time.Location) Env {
	return Env{Now: now, Dates: datemath.NewParserInLocation(loc)}
}

// Command is a validated operation ready to run. The set of implementations
// is closed: CreateTask, UpdateTask, DeleteTask and ListTasks.
type Command interface {
	Execute(ctx context.Context, s Store) (interface{}, error)
	isCommand()
}

// Operation describes one callable operation.
type Operation interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Bind(v *schema.Validator, args map[string]interface{}, env Env) (Command, error)
}

// Registry holds the operations offered to the model, in a stable order.
type Registry struct {
	ops       map[string]Operation
	order     []string
	validator *schema.Validator
}

// NewRegistry creates a Registry. Later operations replace earlier ones
// with the same name.
func NewRegistry(v *schema.Validator, ops ...Operation) *Registry {
	r := &Registry{ops: make(map[string]Operation, len(ops)), validator: v}
	for _, op := range ops {
		if _, exists := r.ops[op.Name()]; !exists {
			r.order = append(r.order, op.Name())
		}
		r.ops[op.Name()] = op
	}
	return r
}

// Default returns the registry of task operations.
func Default(v *schema.Validator) *Registry {
	return NewRegistry(v, CreateTaskOp{}, UpdateTaskOp{}, DeleteTaskOp{}, ListTasksOp{})
}

// Get looks up an operation by name.
func (r *Registry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// List returns every operation in registration order.
func (r *Registry) List() []Operation {
	out := make([]Operation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}

// Tools converts the registry to provider function declarations.
func (r *Registry) Tools() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, op := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        op.Name(),
			Description: op.Description(),
			Parameters:  op.Parameters(),
		})
	}
	return tools
}

// Bind resolves name and narrows args into a Command. Errors wrap
// ErrUnknownOperation or ErrInvalidArguments and read
// "unknown operation: <name>" or "invalid arguments: <details>".
func (r *Registry) Bind(name string, args map[string]interface{}, env Env) (Command, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	cmd, err := op.Bind(r.validator, args, env)
	if err != nil {
		return nil, invalidArguments(err)
	}
	return cmd, nil
}

func invalidArguments(err error) error {
	var se *schema.Error
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %s", ErrInvalidArguments, strings.Join(se.Problems, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
}

// parseDue interprets a due date argument in the caller's zone.
func parseDue(value string, env Env) (time.Time, error) {
	t, err := env.Dates.Parse(value, env.Now)
	if err != nil {
		return time.Time{}, fmt.Errorf("due_at: %q is not a recognized date", value)
	}
	return t, nil
}

func notFound(err error, id string) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
	}
	return err
}
