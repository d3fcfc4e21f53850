package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ledger/internal/pkg/middleware"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger/handler/http"
)

// Handler wires the ledger HTTP handlers to their routes
type Handler struct {
	transactionHandler *http.TransactionHandler
	accountHandler     *http.AccountHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	transactionHandler *http.TransactionHandler,
	accountHandler *http.AccountHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		accountHandler:     accountHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers every ledger route behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	txGroup := protected.Group("/transactions")
	txGroup.GET("", h.transactionHandler.ListTransactions, adminOnly)
	txGroup.POST("/deposit", h.transactionHandler.Deposit)
	txGroup.POST("/transfer", h.transactionHandler.Transfer)
	txGroup.PATCH("/:id/cancel", h.transactionHandler.Cancel)
	txGroup.PATCH("/:id/approve", h.transactionHandler.Approve, adminOnly)

	userGroup := protected.Group("/user")
	userGroup.GET("/deposits", h.accountHandler.Deposits)
	userGroup.GET("/transfers", h.accountHandler.Transfers)
	userGroup.PATCH("/:id/deactivate", h.accountHandler.Deactivate)
}
