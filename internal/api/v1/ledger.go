package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/service"
)

type LedgerHandler struct {
	service service.LedgerService
	log     *logger.Logger
}

func NewLedgerHandler(service service.LedgerService, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{service: service, log: log}
}

func (h *LedgerHandler) GetTenantBalance(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.TenantBalance(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get tenant balance", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LedgerHandler) GetOwnerBalance(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.OwnerBalance(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get owner balance", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
