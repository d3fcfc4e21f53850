package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

// DeactivateAccount marks the account inactive and fails its pending
// transactions in the same unit. The refresh session is dropped after commit.
func (uc *ledgerUC) DeactivateAccount(ctx context.Context, targetID uuid.UUID, actor models.Principal) (*models.AccountView, error) {
	if !CanDeactivate(actor, targetID) {
		return nil, apperror.Forbidden(constants.MsgNoRights)
	}

	var (
		account *models.Account
		failed  []*models.TransactionView
	)
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		accounts, err := tx.LockAccounts(ctx, targetID)
		if err != nil {
			return err
		}
		var ok bool
		if account, ok = accounts[targetID]; !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, targetID))
		}

		account.IsActive = false
		if err := tx.UpdateAccount(ctx, account); err != nil {
			return err
		}

		failed, err = uc.cascade(ctx, tx, targetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := uc.ledgerGW.RevokeSessions(ctx, targetID); err != nil {
		logger.Warn("Failed to revoke sessions of deactivated account",
			logger.String("account_id", targetID.String()),
			logger.Err(err))
	}

	logger.Info("Account deactivated",
		logger.String("account_id", targetID.String()),
		logger.String("actor_id", actor.ID.String()),
		logger.Int("failed_transactions", len(failed)))
	uc.publish(ctx, failed...)
	return account.View(), nil
}

// CascadeDeactivation fails every pending transaction of the account
func (uc *ledgerUC) CascadeDeactivation(ctx context.Context, accountID uuid.UUID) ([]*models.TransactionView, error) {
	var failed []*models.TransactionView
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		var err error
		failed, err = uc.cascade(ctx, tx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, failed...)
	return failed, nil
}

func (uc *ledgerUC) cascade(ctx context.Context, tx ledger.TxRepo, accountID uuid.UUID) ([]*models.TransactionView, error) {
	pending, err := tx.ListPendingForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []*models.TransactionView{}, nil
	}

	for _, t := range pending {
		t.Close(models.StatusFailed, constants.ReasonParticipantDeactivate)
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return nil, err
		}
	}
	if err := tx.LoadParticipants(ctx, pending...); err != nil {
		return nil, err
	}

	views := make([]*models.TransactionView, 0, len(pending))
	for _, t := range pending {
		view := t.View()
		if err := uc.notify(ctx, view); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
