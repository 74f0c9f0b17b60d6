package task

import (
	"strings"
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
)

// FilterOptions are the in-memory predicates shared by the REST list
// endpoint and the assistant's list operation. Zero values match everything.
type FilterOptions struct {
	Status    model.TaskStatus
	DueFilter model.DueFilter
	Search    string
	Now       time.Time
	Location  *time.Location
}

// Filter returns the tasks matching every predicate in opt, preserving order.
// The result is never nil.
func Filter(tasks []model.Task, opt FilterOptions) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.DueFilter != "" && !MatchesDueFilter(t, opt.DueFilter, opt.Now, opt.Location) {
			continue
		}
		if !MatchesSearch(t, opt.Search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MatchesDueFilter classifies t against now. Tasks without a due date never match.
//   - today: due within the calendar day of now in loc
//   - overdue: due before now and not done
//   - upcoming: due after now and not done
func MatchesDueFilter(t model.Task, f model.DueFilter, now time.Time, loc *time.Location) bool {
	if t.DueAt == nil {
		return false
	}
	due := *t.DueAt

	switch f {
	case model.DueFilterToday:
		start, end := datemath.NewParserInLocation(loc).DayBounds(now)
		return !due.Before(start) && due.Before(end)
	case model.DueFilterOverdue:
		return due.Before(now) && !t.IsDone()
	case model.DueFilterUpcoming:
		return due.After(now) && !t.IsDone()
	default:
		return false
	}
}

// MatchesSearch reports whether q is a case-insensitive substring of the
// title or description. An empty query matches.
func MatchesSearch(t model.Task, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}
