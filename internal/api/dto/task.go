package dto

import (
	"context"
	"time"

	"github.com/inmovia/inmovia/internal/domain/task"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
)

// CreateTaskRequest represents a request to put a task on the board
type CreateTaskRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description,omitempty"`
	DueDate     time.Time          `json:"due_date"`
	Priority    types.TaskPriority `json:"priority"`
	AssignedTo  string             `json:"assigned_to"`
	CreatedBy   string             `json:"created_by" binding:"required"`
}

func (r CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return ierr.NewError("task title is required").
			WithHint("Title is required").
			Mark(ierr.ErrValidation)
	}
	if r.CreatedBy == "" {
		return ierr.NewError("task creator is required").
			WithHint("Creator is required").
			Mark(ierr.ErrValidation)
	}
	if r.Priority != "" {
		if err := r.Priority.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Priority must be LOW, MEDIUM or HIGH").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ToTask converts the request to a domain task. New tasks always start
// in the TODO column.
func (r CreateTaskRequest) ToTask(ctx context.Context) *task.Task {
	priority := r.Priority
	if priority == "" {
		priority = types.TaskPriorityMedium
	}
	assignedTo := r.AssignedTo
	if assignedTo == "" {
		assignedTo = task.AssigneeAll
	}
	dueDate := r.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now().UTC()
	}
	return &task.Task{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TASK),
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dueDate.UTC(),
		Priority:    priority,
		Status:      types.TaskStatusTodo,
		AssignedTo:  assignedTo,
		CreatedBy:   r.CreatedBy,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Priority    *types.TaskPriority `json:"priority,omitempty"`
	Status      *types.TaskStatus   `json:"status,omitempty"`
	AssignedTo  *string             `json:"assigned_to,omitempty"`
}

// TaskResponse represents a task response
type TaskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	DueDate     time.Time          `json:"due_date"`
	Priority    types.TaskPriority `json:"priority"`
	Status      types.TaskStatus   `json:"status"`
	AssignedTo  string             `json:"assigned_to"`
	CreatedBy   string             `json:"created_by"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ListTasksResponse represents a list of tasks
type ListTasksResponse struct {
	Items []*TaskResponse `json:"items"`
	Total int             `json:"total"`
}

// NewTaskResponse creates a task response from a domain task
func NewTaskResponse(t *task.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
