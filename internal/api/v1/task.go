package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type TaskHandler struct {
	service service.TaskService
	log     *logger.Logger
}

func NewTaskHandler(service service.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, log: log}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateTask(ctx, req)
	if err != nil {
		h.log.Error("Failed to create task", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetTask(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get task", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.ListTasks(ctx, c.Query("assigned_to"))
	if err != nil {
		h.log.Error("Failed to list tasks", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateTask(ctx, c.Param("id"), req)
	if err != nil {
		h.log.Error("Failed to update task", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteTask(ctx, c.Param("id")); err != nil {
		h.log.Error("Failed to delete task", "error", err)
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
