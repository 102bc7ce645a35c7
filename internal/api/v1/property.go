package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type PropertyHandler struct {
	service service.PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{service: service, log: log}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProperty(ctx, req)
	if err != nil {
		h.log.Error("Failed to create property", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetProperty(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get property", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.ListProperties(ctx)
	if err != nil {
		h.log.Error("Failed to list properties", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProperty(ctx, c.Param("id"), req)
	if err != nil {
		h.log.Error("Failed to update property", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
