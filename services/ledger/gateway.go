package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ledger/services/ledger LedgerGW

// LedgerGW groups the outbound integrations of the ledger
type LedgerGW interface {
	// Webhook, synchronous; a failure aborts the enclosing unit
	Notify(ctx context.Context, view *models.TransactionView) error

	// NATS, best effort after commit
	PublishTransactionEvent(ctx context.Context, view *models.TransactionView) error

	// Redis, drops the refresh session of a deactivated account
	RevokeSessions(ctx context.Context, accountID uuid.UUID) error
}
