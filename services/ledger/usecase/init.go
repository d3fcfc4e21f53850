package usecase

import (
	"context"

	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	nrpkg "github.com/piresc/ledger/internal/pkg/newrelic"
	"github.com/piresc/ledger/services/ledger"
)

// ledgerUC implements the ledger.LedgerUC interface
type ledgerUC struct {
	cfg      *models.Config
	repo     ledger.LedgerRepo
	ledgerGW ledger.LedgerGW
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(
	cfg *models.Config,
	repo ledger.LedgerRepo,
	ledgerGW ledger.LedgerGW,
) ledger.LedgerUC {
	return &ledgerUC{
		cfg:      cfg,
		repo:     repo,
		ledgerGW: ledgerGW,
	}
}

// notify delivers the view to the webhook. It runs inside the unit of work,
// so an error here rolls the unit back.
func (uc *ledgerUC) notify(ctx context.Context, view *models.TransactionView) error {
	err := nrpkg.WithSegment(ctx, "ledger.webhook", func() error {
		return uc.ledgerGW.Notify(ctx, view)
	})
	if err != nil {
		logger.Error("Webhook notification failed",
			logger.String("transaction_id", view.ID.String()),
			logger.String("status", string(view.Status)),
			logger.Err(err))
		nrpkg.NoticeError(ctx, err)
		return apperror.Internal(constants.MsgWebhookFailed, err)
	}
	return nil
}

// publish announces committed views on NATS; failures are only logged
func (uc *ledgerUC) publish(ctx context.Context, views ...*models.TransactionView) {
	for _, view := range views {
		if err := uc.ledgerGW.PublishTransactionEvent(ctx, view); err != nil {
			logger.Warn("Failed to publish transaction event",
				logger.String("transaction_id", view.ID.String()),
				logger.String("status", string(view.Status)),
				logger.Err(err))
		}
	}
}
