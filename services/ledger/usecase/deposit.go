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
	"github.com/shopspring/decimal"
)

// Deposit credits the account and records a settled DEPOSIT
func (uc *ledgerUC) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*models.TransactionView, error) {
	if err := models.ValidateAmount(amount); err != nil {
		return nil, err
	}

	var view *models.TransactionView
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		accounts, err := tx.LockAccounts(ctx, accountID)
		if err != nil {
			return err
		}
		account, ok := accounts[accountID]
		if !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, accountID))
		}

		account.Balance = account.Balance.Add(amount).Round(2)
		if err := tx.UpdateAccount(ctx, account); err != nil {
			return err
		}

		deposit := &models.Transaction{
			Amount:     amount.Round(2),
			Kind:       models.KindDeposit,
			Status:     models.StatusSuccess,
			ReceiverID: &accountID,
		}
		if err := tx.CreateTransaction(ctx, deposit); err != nil {
			return err
		}
		deposit.Receiver = account

		view = deposit.View()
		return uc.notify(ctx, view)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Deposit settled",
		logger.String("transaction_id", view.ID.String()),
		logger.String("account_id", accountID.String()),
		logger.Stringer("amount", view.Amount))
	uc.publish(ctx, view)
	return view, nil
}
