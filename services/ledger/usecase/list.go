package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/internal/pkg/pagination"
)

// ListTransactions returns one page of all transactions matching filter, newest first
func (uc *ledgerUC) ListTransactions(ctx context.Context, filter models.TransactionFilter, page pagination.Request) (*models.TransactionPage, error) {
	return uc.list(ctx, filter, page, true)
}

// ListDeposits returns the deposits credited to the account
func (uc *ledgerUC) ListDeposits(ctx context.Context, accountID uuid.UUID, page pagination.Request) (*models.TransactionPage, error) {
	return uc.list(ctx, models.TransactionFilter{
		Kind:       models.KindDeposit,
		ReceiverID: &accountID,
	}, page, false)
}

// ListTransfers returns the transfers the account sent or received
func (uc *ledgerUC) ListTransfers(ctx context.Context, accountID uuid.UUID, page pagination.Request) (*models.TransactionPage, error) {
	return uc.list(ctx, models.TransactionFilter{
		Kind:          models.KindTransfer,
		ParticipantID: &accountID,
	}, page, true)
}

func (uc *ledgerUC) list(ctx context.Context, filter models.TransactionFilter, page pagination.Request, withParticipants bool) (*models.TransactionPage, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	txs, total, err := uc.repo.ListTransactions(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err := page.Check(total); err != nil {
		return nil, err
	}

	if withParticipants && len(txs) > 0 {
		if err := uc.repo.LoadParticipants(ctx, txs...); err != nil {
			return nil, err
		}
	}

	data := make([]*models.TransactionView, 0, len(txs))
	for _, t := range txs {
		data = append(data, t.View())
	}
	return &models.TransactionPage{
		TotalPages:        pagination.TotalPages(total, page.Count),
		TotalTransactions: total,
		Count:             page.Count,
		Page:              page.Page,
		Data:              data,
	}, nil
}
