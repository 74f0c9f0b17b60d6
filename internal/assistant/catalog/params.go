package catalog

import "task-assistant/internal/model"

// JSON-schema fragments shared by the operation declarations.

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func enumProp(description string, values []string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description, "enum": values}
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func taskFieldProps() map[string]interface{} {
	return map[string]interface{}{
		"title":       map[string]interface{}{"type": "string", "description": "Short task title", "maxLength": model.TaskTitleMaxLen},
		"description": map[string]interface{}{"type": "string", "description": "Longer description", "maxLength": model.TaskDescriptionMaxLen},
		"notes":       map[string]interface{}{"type": "string", "description": "Free-form notes", "maxLength": model.TaskNotesMaxLen},
		"due_at": stringProp("Due date: RFC 3339, YYYY-MM-DD, YYYY-MM-DDTHH:MM (user's time zone), " +
			"or a relative phrase like 'tomorrow', 'in 3 days', 'next friday'"),
		"priority": enumProp("Task priority", enumValues(model.Priorities())),
		"category": enumProp("Task category", enumValues(model.Categories())),
		"tags": map[string]interface{}{
			"type":        "array",
			"description": "Labels for the task",
			"items":       map[string]interface{}{"type": "string", "maxLength": model.TaskTagMaxLen},
			"maxItems":    model.TaskMaxTags,
			"uniqueItems": true,
		},
		"estimated_duration_minutes": map[string]interface{}{
			"type":        "integer",
			"description": "Estimated effort in minutes",
			"minimum":     1,
			"maximum":     model.TaskMaxDurationMin,
		},
	}
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
