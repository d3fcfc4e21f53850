package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ledger/services/ledger LedgerRepo,TxRepo

// LedgerRepo is the account and transaction store
type LedgerRepo interface {
	// RunInTx commits when fn returns nil and rolls back otherwise
	RunInTx(ctx context.Context, fn func(tx TxRepo) error) error

	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, int, error)
	LoadParticipants(ctx context.Context, txs ...*models.Transaction) error
}

// TxRepo is the store as seen from inside one atomic unit. Rows returned
// by the locking reads stay locked until the unit ends.
type TxRepo interface {
	// LockAccounts locks the existing accounts among ids in ascending id
	// order. Missing ids are absent from the result.
	LockAccounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) error

	GetTransactionForUpdate(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListPendingForUpdate(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	LoadParticipants(ctx context.Context, txs ...*models.Transaction) error
}
