package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/pagination"
	"github.com/piresc/ledger/internal/utils"
	"github.com/piresc/ledger/services/ledger"
)

// AccountHandler serves the caller's own ledger views and deactivation
type AccountHandler struct {
	ledgerUC ledger.LedgerUC
}

func NewAccountHandler(ledgerUC ledger.LedgerUC) *AccountHandler {
	return &AccountHandler{
		ledgerUC: ledgerUC,
	}
}

func (h *AccountHandler) Deposits(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	page, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("count"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	result, err := h.ledgerUC.ListDeposits(c.Request().Context(), principal.ID, page)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AccountHandler) Transfers(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	page, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("count"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	result, err := h.ledgerUC.ListTransfers(c.Request().Context(), principal.ID, page)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Deactivate disables an account and fails its pending transactions
func (h *AccountHandler) Deactivate(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidAccountID)
	}

	account, err := h.ledgerUC.DeactivateAccount(c.Request().Context(), id, principal)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, constants.MsgAccountDeactivated, account)
}
