package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/pkg/pagination"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ledger/services/ledger LedgerUC

// LedgerUC is the ledger engine. Every mutating operation is one atomic
// unit that includes the webhook notification.
type LedgerUC interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*models.TransactionView, error)
	CreateTransfer(ctx context.Context, senderID, receiverID uuid.UUID, amount decimal.Decimal) (*models.TransactionView, error)
	CancelTransfer(ctx context.Context, transactionID uuid.UUID, actor models.Principal) (*models.TransactionView, error)
	// ApproveTransfer expects the caller to have checked the ADMIN role
	ApproveTransfer(ctx context.Context, transactionID uuid.UUID) (*models.TransactionView, error)

	DeactivateAccount(ctx context.Context, targetID uuid.UUID, actor models.Principal) (*models.AccountView, error)
	CascadeDeactivation(ctx context.Context, accountID uuid.UUID) ([]*models.TransactionView, error)

	ListTransactions(ctx context.Context, filter models.TransactionFilter, page pagination.Request) (*models.TransactionPage, error)
	ListDeposits(ctx context.Context, accountID uuid.UUID, page pagination.Request) (*models.TransactionPage, error)
	ListTransfers(ctx context.Context, accountID uuid.UUID, page pagination.Request) (*models.TransactionPage, error)
}
