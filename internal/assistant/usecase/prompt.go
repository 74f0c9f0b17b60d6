package usecase

import (
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

type taskStats struct {
	total, pending, done, dueToday, overdue int
}

func summarize(tasks []model.Task, now time.Time, loc *time.Location) taskStats {
	st := taskStats{total: len(tasks)}
	for _, t := range tasks {
		if t.IsDone() {
			st.done++
		} else {
			st.pending++
		}
		if task.MatchesDueFilter(t, model.DueFilterToday, now, loc) {
			st.dueToday++
		}
		if task.MatchesDueFilter(t, model.DueFilterOverdue, now, loc) {
			st.overdue++
		}
	}
	return st
}

// buildSystemPrompt renders the instruction sent with every request: the
// fixed rules, the caller's calendar context and a snapshot of their tasks.
// A nil tasks slice with available=false means the store could not be read.
func buildSystemPrompt(now time.Time, loc *time.Location, tasks []model.Task, available bool, maxTasks int) string {
	now = now.In(loc)

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	writeTimeContext(&b, now)

	b.WriteString("\n[TASKS]\n")
	if !available {
		b.WriteString("The task list is unavailable right now. Use list_tasks if you need it.\n")
		return b.String()
	}

	st := summarize(tasks, now, loc)
	fmt.Fprintf(&b, "Total: %d | Pending: %d | Done: %d | Due today: %d | Overdue: %d\n",
		st.total, st.pending, st.done, st.dueToday, st.overdue)

	for i, t := range tasks {
		if i == maxTasks {
			fmt.Fprintf(&b, "... and %d more (use list_tasks to see them)\n", len(tasks)-maxTasks)
			break
		}
		writeTaskLine(&b, t, loc)
	}
	return b.String()
}

func writeTimeContext(b *strings.Builder, now time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	b.WriteString("[TIME]\n")
	fmt.Fprintf(b, "- Now: %s (%s, %s)\n", now.Format(dateTimeFormat), now.Weekday(), now.Location())
	fmt.Fprintf(b, "- Tomorrow: %s\n", now.AddDate(0, 0, 1).Format(dateFormat))
	fmt.Fprintf(b, "- This week: %s to %s\n", weekStart.Format(dateFormat), weekEnd.Format(dateFormat))
}

func writeTaskLine(b *strings.Builder, t model.Task, loc *time.Location) {
	fmt.Fprintf(b, "- [%s] %s | %s", t.ID, t.Title, t.Status)
	if t.Priority != "" {
		fmt.Fprintf(b, " | priority: %s", t.Priority)
	}
	if t.DueAt != nil {
		fmt.Fprintf(b, " | due: %s", t.DueAt.In(loc).Format(dateTimeFormat))
	}
	b.WriteByte('\n')
}
