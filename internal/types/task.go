package types

import (
	"fmt"

	"github.com/samber/lo"
)

// TaskPriority represents the urgency of an agency task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) String() string {
	return string(p)
}

func (p TaskPriority) Validate() error {
	allowed := []TaskPriority{
		TaskPriorityLow,
		TaskPriorityMedium,
		TaskPriorityHigh,
	}
	if !lo.Contains(allowed, p) {
		return fmt.Errorf("invalid task priority: %s", p)
	}
	return nil
}

// TaskStatus represents where a task sits on the board
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) Validate() error {
	allowed := []TaskStatus{
		TaskStatusTodo,
		TaskStatusInProgress,
		TaskStatusDone,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid task status: %s", s)
	}
	return nil
}
