package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/utils"
	"github.com/plutoride/vendor-app/services/balance"
)

// BalanceHandler handles HTTP requests for the balance sheet
type BalanceHandler struct {
	balanceUC balance.BalanceUC
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balanceUC balance.BalanceUC) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// RegisterRoutes registers the balance API routes behind the session guard
func (h *BalanceHandler) RegisterRoutes(protected *echo.Group) {
	protected.GET("/balance", h.GetBalanceSheet)
}

// GetBalanceSheet returns the ledger entries together with the running total
func (h *BalanceHandler) GetBalanceSheet(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.balanceUC.Entries(ctx)
	if err != nil {
		logger.Error("Failed to load balance sheet", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	total, err := h.balanceUC.Balance(ctx)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}
