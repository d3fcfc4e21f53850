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

// CreateTransfer records a PENDING transfer. No funds move until approval.
func (uc *ledgerUC) CreateTransfer(ctx context.Context, senderID, receiverID uuid.UUID, amount decimal.Decimal) (*models.TransactionView, error) {
	if err := models.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if senderID == receiverID {
		return nil, apperror.Validation("receiver_id", constants.MsgSameParticipants)
	}

	var view *models.TransactionView
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		accounts, err := tx.LockAccounts(ctx, senderID, receiverID)
		if err != nil {
			return err
		}

		receiver, ok := accounts[receiverID]
		if !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, receiverID))
		}
		if !receiver.IsActive {
			return apperror.Forbidden(constants.MsgReceiverDeactivated)
		}
		sender, ok := accounts[senderID]
		if !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, senderID))
		}
		if sender.Balance.LessThan(amount) {
			return apperror.Validation("amount", constants.MsgInsufficientBalance)
		}

		transfer := &models.Transaction{
			Amount:     amount.Round(2),
			Kind:       models.KindTransfer,
			Status:     models.StatusPending,
			SenderID:   &senderID,
			ReceiverID: &receiverID,
		}
		if err := tx.CreateTransaction(ctx, transfer); err != nil {
			return err
		}
		transfer.Sender, transfer.Receiver = sender, receiver

		view = transfer.View()
		return uc.notify(ctx, view)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer created",
		logger.String("transaction_id", view.ID.String()),
		logger.String("sender_id", senderID.String()),
		logger.String("receiver_id", receiverID.String()))
	uc.publish(ctx, view)
	return view, nil
}

// CancelTransfer closes a pending transfer on behalf of an admin or its sender
func (uc *ledgerUC) CancelTransfer(ctx context.Context, transactionID uuid.UUID, actor models.Principal) (*models.TransactionView, error) {
	var view *models.TransactionView
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		transfer, err := tx.GetTransactionForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if transfer.Kind != models.KindTransfer || transfer.Status != models.StatusPending {
			return apperror.Forbidden(constants.MsgForbiddenOperation)
		}
		if !CanCancel(actor, transfer) {
			return apperror.Forbidden(constants.MsgNoRights)
		}

		reason := constants.ReasonSenderCanceled
		if actor.IsAdmin() {
			reason = constants.ReasonAdminCanceled
		}
		transfer.Close(models.StatusCancelled, reason)
		if err := tx.UpdateTransaction(ctx, transfer); err != nil {
			return err
		}
		if err := tx.LoadParticipants(ctx, transfer); err != nil {
			return err
		}

		view = transfer.View()
		return uc.notify(ctx, view)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer cancelled",
		logger.String("transaction_id", transactionID.String()),
		logger.String("actor_id", actor.ID.String()),
		logger.String("actor_role", string(actor.Role)))
	uc.publish(ctx, view)
	return view, nil
}

// ApproveTransfer settles a pending transfer. The balance check runs against
// the rows locked in this unit, so concurrent approvals cannot overdraw.
func (uc *ledgerUC) ApproveTransfer(ctx context.Context, transactionID uuid.UUID) (*models.TransactionView, error) {
	var view *models.TransactionView
	err := uc.repo.RunInTx(ctx, func(tx ledger.TxRepo) error {
		transfer, err := tx.GetTransactionForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if transfer.Kind != models.KindTransfer || transfer.Status != models.StatusPending {
			return apperror.Forbidden(constants.MsgForbiddenOperation)
		}
		if transfer.SenderID == nil || transfer.ReceiverID == nil {
			return apperror.Internal("transfer is missing a participant", nil)
		}

		accounts, err := tx.LockAccounts(ctx, *transfer.SenderID, *transfer.ReceiverID)
		if err != nil {
			return err
		}
		receiver, ok := accounts[*transfer.ReceiverID]
		if !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, *transfer.ReceiverID))
		}
		sender, ok := accounts[*transfer.SenderID]
		if !ok {
			return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, *transfer.SenderID))
		}
		if sender.Balance.LessThan(transfer.Amount) {
			return apperror.Forbidden(constants.MsgSenderInsufficient)
		}

		sender.Balance = sender.Balance.Sub(transfer.Amount).Round(2)
		receiver.Balance = receiver.Balance.Add(transfer.Amount).Round(2)
		if err := tx.UpdateAccount(ctx, sender); err != nil {
			return err
		}
		if err := tx.UpdateAccount(ctx, receiver); err != nil {
			return err
		}

		transfer.Status = models.StatusSuccess
		if err := tx.UpdateTransaction(ctx, transfer); err != nil {
			return err
		}
		transfer.Sender, transfer.Receiver = sender, receiver

		view = transfer.View()
		return uc.notify(ctx, view)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer approved",
		logger.String("transaction_id", transactionID.String()),
		logger.Stringer("amount", view.Amount))
	uc.publish(ctx, view)
	return view, nil
}
