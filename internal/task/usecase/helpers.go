package usecase

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// taskFields is the validated mutable state shared by Create and Update.
type taskFields struct {
	Title                    string
	Description              string
	Notes                    string
	Status                   model.TaskStatus
	Priority                 model.Priority
	Category                 model.Category
	Tags                     []string
	EstimatedDurationMinutes *int
}

func (f taskFields) validate() error {
	switch {
	case f.Title == "":
		return invalid("title is required")
	case utf8.RuneCountInString(f.Title) > model.TaskTitleMaxLen:
		return invalid("title must have at most %d characters", model.TaskTitleMaxLen)
	case utf8.RuneCountInString(f.Description) > model.TaskDescriptionMaxLen:
		return invalid("description must have at most %d characters", model.TaskDescriptionMaxLen)
	case utf8.RuneCountInString(f.Notes) > model.TaskNotesMaxLen:
		return invalid("notes must have at most %d characters", model.TaskNotesMaxLen)
	case !slices.Contains(model.TaskStatuses(), f.Status):
		return invalid("unknown status %q", f.Status)
	case f.Priority != "" && !slices.Contains(model.Priorities(), f.Priority):
		return invalid("unknown priority %q", f.Priority)
	case f.Category != "" && !slices.Contains(model.Categories(), f.Category):
		return invalid("unknown category %q", f.Category)
	case len(f.Tags) > model.TaskMaxTags:
		return invalid("at most %d tags are allowed", model.TaskMaxTags)
	}

	seen := make(map[string]struct{}, len(f.Tags))
	for _, tag := range f.Tags {
		if utf8.RuneCountInString(tag) > model.TaskTagMaxLen {
			return invalid("tag %q must have at most %d characters", tag, model.TaskTagMaxLen)
		}
		if _, dup := seen[tag]; dup {
			return invalid("duplicate tag %q", tag)
		}
		seen[tag] = struct{}{}
	}

	if d := f.EstimatedDurationMinutes; d != nil && (*d < 1 || *d > model.TaskMaxDurationMin) {
		return invalid("estimated_duration_minutes must be between 1 and %d", model.TaskMaxDurationMin)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", task.ErrInvalidPayload, fmt.Sprintf(format, args...))
}

// normalizeTags trims tags and drops blanks.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func paginate(tasks []model.Task, limit, offset int) []model.Task {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(tasks) {
		return []model.Task{}
	}
	tasks = tasks[offset:]
	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}
	return tasks
}
