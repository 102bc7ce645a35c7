package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type OwnerHandler struct {
	service service.OwnerService
	log     *logger.Logger
}

func NewOwnerHandler(service service.OwnerService, log *logger.Logger) *OwnerHandler {
	return &OwnerHandler{service: service, log: log}
}

func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateOwner(ctx, req)
	if err != nil {
		h.log.Error("Failed to create owner", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OwnerHandler) GetOwner(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetOwner(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get owner", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OwnerHandler) ListOwners(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.ListOwners(ctx)
	if err != nil {
		h.log.Error("Failed to list owners", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateOwner(ctx, c.Param("id"), req)
	if err != nil {
		h.log.Error("Failed to update owner", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
