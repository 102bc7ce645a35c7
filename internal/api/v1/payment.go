package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type PaymentHandler struct {
	service service.PaymentService
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, log: log}
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.MarkPaid(ctx, c.Param("id"), req)
	if err != nil {
		h.log.Error("Failed to mark bill paid", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) RegisterCredit(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.RegisterCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.RegisterCredit(ctx, req)
	if err != nil {
		h.log.Error("Failed to register credit", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
