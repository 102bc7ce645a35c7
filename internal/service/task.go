package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/task"
	"github.com/samber/lo"
)

// TaskService manages the agency task board
type TaskService interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, id string) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, assignedTo string) (*dto.ListTasksResponse, error)
	UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}

type taskService struct {
	ServiceParams
}

// NewTaskService creates a new task service
func NewTaskService(params ServiceParams) TaskService {
	return &taskService{ServiceParams: params}
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := req.ToTask(ctx)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.TaskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.Infow("created task", "task_id", t.ID, "assigned_to", t.AssignedTo)
	return dto.NewTaskResponse(t), nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(t), nil
}

func (s *taskService) ListTasks(ctx context.Context, assignedTo string) (*dto.ListTasksResponse, error) {
	tasks, err := s.TaskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if assignedTo != "" {
		tasks = lo.Filter(tasks, func(t *task.Task, _ int) bool {
			return t.VisibleTo(assignedTo)
		})
	}

	items := lo.Map(tasks, func(t *task.Task, _ int) *dto.TaskResponse {
		return dto.NewTaskResponse(t)
	})
	return &dto.ListTasksResponse{Items: items, Total: len(items)}, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate.UTC()
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.TaskRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(t), nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.TaskRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("deleted task", "task_id", id)
	return nil
}
