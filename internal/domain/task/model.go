package task

import (
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
)

// AssigneeAll marks a task visible to every agency user rather than one
// specific assignee.
const AssigneeAll = "ALL"

// Task represents a follow-up item on the agency board
type Task struct {
	// Unique identifier for this task
	ID string `json:"id"`
	// Short summary shown on the board card
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Deadline for the task
	DueDate time.Time `json:"due_date"`
	// Urgency of the task
	Priority types.TaskPriority `json:"priority"`
	// Board column the task sits in
	Status types.TaskStatus `json:"status"`
	// User the task is assigned to, or AssigneeAll
	AssignedTo string `json:"assigned_to"`
	// User that created the task
	CreatedBy string `json:"created_by"`

	types.BaseModel
}

// Validate validates the task
func (t *Task) Validate() error {
	if t.ID == "" {
		return ierr.NewError("task id is required").
			WithHint("Task id is required").
			Mark(ierr.ErrValidation)
	}
	if t.Title == "" {
		return ierr.NewError("task title is required").
			WithHint("Title is required").
			Mark(ierr.ErrValidation)
	}
	if err := t.Priority.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Priority must be LOW, MEDIUM or HIGH").
			Mark(ierr.ErrValidation)
	}
	if err := t.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Status must be TODO, IN_PROGRESS or DONE").
			Mark(ierr.ErrValidation)
	}
	if t.AssignedTo == "" {
		return ierr.NewError("task assignee is required").
			WithHint("Assignee is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// VisibleTo reports whether the task shows up on the given user's board.
func (t *Task) VisibleTo(userID string) bool {
	return t.AssignedTo == AssigneeAll || t.AssignedTo == userID || t.CreatedBy == userID
}

// TableName returns the table name for the task
func (t *Task) TableName() string {
	return "tasks"
}
