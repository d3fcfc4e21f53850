package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/pkg/pagination"
	"github.com/piresc/ledger/internal/utils"
	"github.com/piresc/ledger/services/ledger"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles HTTP requests for deposits and transfers
type TransactionHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerUC ledger.LedgerUC) *TransactionHandler {
	return &TransactionHandler{
		ledgerUC: ledgerUC,
	}
}

// ListTransactions returns every transaction, newest first. Admin only.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	page, err := pagination.Parse(c.QueryParam("page"), c.QueryParam("count"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	filter := models.TransactionFilter{
		Status: models.TransactionStatus(c.QueryParam("status")),
		Kind:   models.TransactionKind(c.QueryParam("kind")),
	}
	fails := map[string][]string{}
	if filter.Status != "" && !filter.Status.Valid() {
		fails["status"] = []string{"status: Unknown transaction status"}
	}
	if filter.Kind != "" && !filter.Kind.Valid() {
		fails["kind"] = []string{"kind: Unknown transaction kind"}
	}
	if len(fails) > 0 {
		return utils.ValidationErrorResponse(c, fails)
	}

	result, err := h.ledgerUC.ListTransactions(c.Request().Context(), filter, page)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Deposit credits the caller's own account
func (h *TransactionHandler) Deposit(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid deposit payload", logger.Err(err))
		return utils.BadRequestResponse(c, constants.MsgInvalidPayload)
	}
	if fails := validateAmount(req.Amount); len(fails) > 0 {
		return utils.ValidationErrorResponse(c, fails)
	}

	view, err := h.ledgerUC.Deposit(c.Request().Context(), principal.ID, *req.Amount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Deposit has been done successfully", view)
}

// Transfer creates a PENDING transfer from the caller to receiver_id
func (h *TransactionHandler) Transfer(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid transfer payload", logger.Err(err))
		return utils.BadRequestResponse(c, constants.MsgInvalidPayload)
	}
	fails := validateAmount(req.Amount)
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		fails["receiver_id"] = []string{constants.MsgReceiverIDInvalid}
	}
	if len(fails) > 0 {
		return utils.ValidationErrorResponse(c, fails)
	}

	view, err := h.ledgerUC.CreateTransfer(c.Request().Context(), principal.ID, receiverID, *req.Amount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transfer has been created successfully", view)
}

// Cancel cancels a pending transfer. Allowed for admins and the sender.
func (h *TransactionHandler) Cancel(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidTransactionID)
	}

	view, err := h.ledgerUC.CancelTransfer(c.Request().Context(), id, principal)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transfer has been canceled successfully", view)
}

// Approve settles a pending transfer. Admin only.
func (h *TransactionHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, constants.MsgInvalidTransactionID)
	}

	view, err := h.ledgerUC.ApproveTransfer(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transfer has been approved successfully", view)
}

func validateAmount(amount *decimal.Decimal) map[string][]string {
	fails := map[string][]string{}
	if amount == nil {
		fails["amount"] = []string{constants.MsgAmountRequired}
		return fails
	}
	if err := models.ValidateAmount(*amount); err != nil {
		fails["amount"] = []string{err.Error()}
	}
	return fails
}
