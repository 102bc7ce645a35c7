package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type RatesHandler struct {
	service service.RatesService
	log     *logger.Logger
}

func NewRatesHandler(service service.RatesService, log *logger.Logger) *RatesHandler {
	return &RatesHandler{service: service, log: log}
}

func (h *RatesHandler) GetRates(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetRates(ctx)
	if err != nil {
		h.log.Error("Failed to get rates", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RatesHandler) SaveRates(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.SaveRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SaveRates(ctx, req)
	if err != nil {
		h.log.Error("Failed to save rates", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
