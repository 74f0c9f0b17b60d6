package model

import "time"

// TaskStatus is the lifecycle state of a Task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Priority is the optional urgency of a Task. Empty means unset.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Category is the closed set of task categories. Empty means unset.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryPersonal  Category = "personal"
	CategoryHealth    Category = "health"
	CategoryFinance   Category = "finance"
	CategoryShopping  Category = "shopping"
	CategoryEducation Category = "education"
	CategoryOther     Category = "other"
)

// DueFilter classifies a task relative to the current time.
type DueFilter string

const (
	DueFilterToday    DueFilter = "today"
	DueFilterOverdue  DueFilter = "overdue"
	DueFilterUpcoming DueFilter = "upcoming"
)

// Field bounds shared by the HTTP layer, the operation catalog and the database schema.
const (
	TaskTitleMaxLen       = 200
	TaskDescriptionMaxLen = 2000
	TaskNotesMaxLen       = 5000
	TaskMaxTags           = 20
	TaskTagMaxLen         = 50
	TaskMaxDurationMin    = 10080
)

// Task is a user-owned to-do item. UserID never changes after creation.
type Task struct {
	ID                       string     `json:"id"`
	UserID                   string     `json:"user_id"`
	Title                    string     `json:"title"`
	Description              string     `json:"description,omitempty"`
	Notes                    string     `json:"notes,omitempty"`
	DueAt                    *time.Time `json:"due_at,omitempty"`
	Status                   TaskStatus `json:"status"`
	Priority                 Priority   `json:"priority,omitempty"`
	Category                 Category   `json:"category,omitempty"`
	Tags                     []string   `json:"tags,omitempty"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes,omitempty"`
	LastReminderSentAt       *time.Time `json:"last_reminder_sent_at,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// TaskStatuses lists every valid status, in display order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusDone}
}

// Priorities lists every valid priority, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryWork, CategoryPersonal, CategoryHealth, CategoryFinance,
		CategoryShopping, CategoryEducation, CategoryOther,
	}
}

// DueFilters lists every valid due filter.
func DueFilters() []DueFilter {
	return []DueFilter{DueFilterToday, DueFilterOverdue, DueFilterUpcoming}
}
