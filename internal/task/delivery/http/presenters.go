package http

import (
	"time"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// --- Request DTOs ---

type createReq struct {
	Title                    string     `json:"title"                      binding:"required,notblank,max=200"`
	Description              string     `json:"description"                binding:"max=2000"`
	Notes                    string     `json:"notes"                      binding:"max=5000"`
	DueAt                    *time.Time `json:"due_at"`
	Priority                 string     `json:"priority"                   binding:"omitempty,oneof=low medium high urgent"`
	Category                 string     `json:"category"                   binding:"omitempty,oneof=work personal health finance shopping education other"`
	Tags                     []string   `json:"tags"                       binding:"omitempty,max=20,unique,dive,max=50"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes" binding:"omitempty,min=1,max=10080"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:                    r.Title,
		Description:              r.Description,
		Notes:                    r.Notes,
		DueAt:                    r.DueAt,
		Priority:                 model.Priority(r.Priority),
		Category:                 model.Category(r.Category),
		Tags:                     r.Tags,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
	}
}

// ---

type listReq struct {
	Status    string `form:"status"     binding:"omitempty,oneof=pending done"`
	DueFilter string `form:"due_filter" binding:"omitempty,oneof=today overdue upcoming"`
	Search    string `form:"search"     binding:"max=200"`
	Timezone  string `form:"timezone"`
	OrderBy   string `form:"order_by"   binding:"omitempty,oneof=created_at due_at priority title"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`

	location *time.Location
}

func (r *listReq) validate() error {
	r.location = time.UTC
	if r.Timezone != "" {
		loc, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return errInvalidTimezone
		}
		r.location = loc
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	orderBy := r.OrderBy
	if orderBy == "" {
		orderBy = repo.OrderByCreatedAt
	}
	return task.ListInput{
		Status:    model.TaskStatus(r.Status),
		DueFilter: model.DueFilter(r.DueFilter),
		Search:    r.Search,
		Location:  r.location,
		OrderBy:   orderBy,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

// updateReq is a partial update. ClearDueAt removes the due date, since
// a JSON null cannot be told apart from an absent field.
type updateReq struct {
	ID                       string     `json:"-"`
	Title                    *string    `json:"title"                      binding:"omitempty,max=200"`
	Description              *string    `json:"description"                binding:"omitempty,max=2000"`
	Notes                    *string    `json:"notes"                      binding:"omitempty,max=5000"`
	DueAt                    *time.Time `json:"due_at"`
	ClearDueAt               bool       `json:"clear_due_at"`
	Status                   *string    `json:"status"                     binding:"omitempty,oneof=pending done"`
	Priority                 *string    `json:"priority"                   binding:"omitempty,oneof=low medium high urgent"`
	Category                 *string    `json:"category"                   binding:"omitempty,oneof=work personal health finance shopping education other"`
	Tags                     []string   `json:"tags"                       binding:"omitempty,max=20,unique,dive,max=50"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes" binding:"omitempty,min=1,max=10080"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:                       r.ID,
		Title:                    r.Title,
		Description:              r.Description,
		Notes:                    r.Notes,
		DueAt:                    r.DueAt,
		ClearDueAt:               r.ClearDueAt,
		Tags:                     r.Tags,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
	}
	if r.Status != nil {
		s := model.TaskStatus(*r.Status)
		in.Status = &s
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID                       string     `json:"id"`
	Title                    string     `json:"title"`
	Description              string     `json:"description"`
	Notes                    string     `json:"notes"`
	DueAt                    *time.Time `json:"due_at"`
	Status                   string     `json:"status"`
	Priority                 string     `json:"priority,omitempty"`
	Category                 string     `json:"category,omitempty"`
	Tags                     []string   `json:"tags"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:                       t.ID,
		Title:                    t.Title,
		Description:              t.Description,
		Notes:                    t.Notes,
		DueAt:                    t.DueAt,
		Status:                   string(t.Status),
		Priority:                 string(t.Priority),
		Category:                 string(t.Category),
		Tags:                     tags,
		EstimatedDurationMinutes: t.EstimatedDurationMinutes,
		CreatedAt:                t.CreatedAt,
		UpdatedAt:                t.UpdatedAt,
	}
}

type taskEnvelope struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskEnvelope(t model.Task) taskEnvelope {
	return taskEnvelope{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
