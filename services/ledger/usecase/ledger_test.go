package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
	"github.com/piresc/ledger/services/ledger/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ucMocks struct {
	repo *mocks.MockLedgerRepo
	tx   *mocks.MockTxRepo
	gw   *mocks.MockLedgerGW
}

func newTestUC(t *testing.T) (ledger.LedgerUC, ucMocks) {
	ctrl := gomock.NewController(t)
	m := ucMocks{
		repo: mocks.NewMockLedgerRepo(ctrl),
		tx:   mocks.NewMockTxRepo(ctrl),
		gw:   mocks.NewMockLedgerGW(ctrl),
	}
	return NewLedgerUC(&models.Config{}, m.repo, m.gw), m
}

// expectUnit runs the unit of work against the mocked TxRepo
func (m ucMocks) expectUnit() {
	m.repo.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ledger.TxRepo) error) error {
			return fn(m.tx)
		})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(balance string, active bool) *models.Account {
	return &models.Account{
		ID:       uuid.New(),
		Email:    "holder@example.com",
		Role:     models.RoleRegular,
		Balance:  dec(balance),
		IsActive: active,
	}
}

func pendingTransfer(sender, receiver *models.Account, amount string) *models.Transaction {
	return &models.Transaction{
		ID:         uuid.New(),
		Amount:     dec(amount),
		Kind:       models.KindTransfer,
		Status:     models.StatusPending,
		SenderID:   &sender.ID,
		ReceiverID: &receiver.ID,
	}
}

func TestDeposit_Success(t *testing.T) {
	uc, m := newTestUC(t)
	acc := account("100.00", true)

	m.expectUnit()
	m.tx.EXPECT().LockAccounts(gomock.Any(), acc.ID).
		Return(map[uuid.UUID]*models.Account{acc.ID: acc}, nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Account) error {
			assert.Equal(t, "150.00", a.Balance.StringFixed(2))
			return nil
		})
	m.tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, txn *models.Transaction) error {
			assert.Equal(t, models.KindDeposit, txn.Kind)
			assert.Equal(t, models.StatusSuccess, txn.Status)
			assert.Nil(t, txn.SenderID)
			require.NotNil(t, txn.ReceiverID)
			assert.Equal(t, acc.ID, *txn.ReceiverID)
			txn.ID = uuid.New()
			return nil
		})
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	view, err := uc.Deposit(context.Background(), acc.ID, dec("50.00"))

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, view.Status)
	require.NotNil(t, view.Receiver)
	assert.Equal(t, "150.00", view.Receiver.Balance.StringFixed(2))
}

func TestDeposit_InvalidAmount(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.Deposit(context.Background(), uuid.New(), dec("0"))
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = uc.Deposit(context.Background(), uuid.New(), dec("1.005"))
	assert.EqualError(t, err, constants.MsgAmountPrecision)
}

func TestDeposit_AccountNotFound(t *testing.T) {
	uc, m := newTestUC(t)
	id := uuid.New()

	m.expectUnit()
	m.tx.EXPECT().LockAccounts(gomock.Any(), id).Return(map[uuid.UUID]*models.Account{}, nil)

	_, err := uc.Deposit(context.Background(), id, dec("10"))
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestDeposit_WebhookFailureAborts(t *testing.T) {
	uc, m := newTestUC(t)
	acc := account("0.00", true)

	m.expectUnit()
	m.tx.EXPECT().LockAccounts(gomock.Any(), acc.ID).
		Return(map[uuid.UUID]*models.Account{acc.ID: acc}, nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	view, err := uc.Deposit(context.Background(), acc.ID, dec("10"))

	assert.Nil(t, view)
	assert.True(t, apperror.Is(err, apperror.KindInternal))
	assert.Contains(t, err.Error(), constants.MsgWebhookFailed)
}

func TestCreateTransfer(t *testing.T) {
	tests := []struct {
		name     string
		sender   *models.Account
		receiver *models.Account
		amount   string
		missing  string
		wantKind apperror.Kind
		wantMsg  string
	}{
		{
			name:     "deactivated receiver",
			sender:   account("100", true),
			receiver: account("0", false),
			amount:   "10",
			wantKind: apperror.KindForbidden,
			wantMsg:  constants.MsgReceiverDeactivated,
		},
		{
			name:     "insufficient balance",
			sender:   account("5.00", true),
			receiver: account("0", true),
			amount:   "5.01",
			wantKind: apperror.KindValidation,
			wantMsg:  constants.MsgInsufficientBalance,
		},
		{
			name:     "unknown receiver",
			sender:   account("100", true),
			receiver: account("0", true),
			amount:   "10",
			missing:  "receiver",
			wantKind: apperror.KindNotFound,
		},
		{
			name:     "unknown sender",
			sender:   account("100", true),
			receiver: account("0", true),
			amount:   "10",
			missing:  "sender",
			wantKind: apperror.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUC(t)
			locked := map[uuid.UUID]*models.Account{tt.sender.ID: tt.sender, tt.receiver.ID: tt.receiver}
			switch tt.missing {
			case "receiver":
				delete(locked, tt.receiver.ID)
			case "sender":
				delete(locked, tt.sender.ID)
			}

			m.expectUnit()
			m.tx.EXPECT().LockAccounts(gomock.Any(), tt.sender.ID, tt.receiver.ID).Return(locked, nil)

			_, err := uc.CreateTransfer(context.Background(), tt.sender.ID, tt.receiver.ID, dec(tt.amount))

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestCreateTransfer_Success(t *testing.T) {
	uc, m := newTestUC(t)
	sender := account("100.00", true)
	receiver := account("10.00", true)

	m.expectUnit()
	m.tx.EXPECT().LockAccounts(gomock.Any(), sender.ID, receiver.ID).
		Return(map[uuid.UUID]*models.Account{sender.ID: sender, receiver.ID: receiver}, nil)
	m.tx.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, txn *models.Transaction) error {
			assert.Equal(t, models.StatusPending, txn.Status)
			assert.Equal(t, models.KindTransfer, txn.Kind)
			return nil
		})
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats: connection closed"))

	view, err := uc.CreateTransfer(context.Background(), sender.ID, receiver.ID, dec("100"))

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, view.Status)
	assert.Equal(t, "100.00", view.Sender.Balance.StringFixed(2))
	assert.Equal(t, "10.00", view.Receiver.Balance.StringFixed(2))
}

func TestCreateTransfer_SelfTransfer(t *testing.T) {
	uc, _ := newTestUC(t)
	id := uuid.New()

	_, err := uc.CreateTransfer(context.Background(), id, id, dec("1"))

	assert.EqualError(t, err, constants.MsgSameParticipants)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestCancelTransfer(t *testing.T) {
	sender := account("50", true)
	receiver := account("0", true)

	tests := []struct {
		name       string
		txn        func() *models.Transaction
		actor      models.Principal
		wantMsg    string
		wantReason string
	}{
		{
			name:       "sender cancels",
			txn:        func() *models.Transaction { return pendingTransfer(sender, receiver, "10") },
			actor:      models.Principal{ID: sender.ID, Role: models.RoleRegular},
			wantReason: constants.ReasonSenderCanceled,
		},
		{
			name:       "admin cancels",
			txn:        func() *models.Transaction { return pendingTransfer(sender, receiver, "10") },
			actor:      models.Principal{ID: uuid.New(), Role: models.RoleAdmin},
			wantReason: constants.ReasonAdminCanceled,
		},
		{
			name:    "receiver may not cancel",
			txn:     func() *models.Transaction { return pendingTransfer(sender, receiver, "10") },
			actor:   models.Principal{ID: receiver.ID, Role: models.RoleRegular},
			wantMsg: constants.MsgNoRights,
		},
		{
			name: "already settled",
			txn: func() *models.Transaction {
				txn := pendingTransfer(sender, receiver, "10")
				txn.Status = models.StatusSuccess
				return txn
			},
			actor:   models.Principal{ID: sender.ID, Role: models.RoleRegular},
			wantMsg: constants.MsgForbiddenOperation,
		},
		{
			name: "deposits cannot be cancelled",
			txn: func() *models.Transaction {
				txn := pendingTransfer(sender, receiver, "10")
				txn.Kind = models.KindDeposit
				return txn
			},
			actor:   models.Principal{ID: uuid.New(), Role: models.RoleAdmin},
			wantMsg: constants.MsgForbiddenOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUC(t)
			txn := tt.txn()

			m.expectUnit()
			m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), txn.ID).Return(txn, nil)
			if tt.wantMsg == "" {
				m.tx.EXPECT().UpdateTransaction(gomock.Any(), txn).Return(nil)
				m.tx.EXPECT().LoadParticipants(gomock.Any(), txn).Return(nil)
				m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
				m.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)
			}

			view, err := uc.CancelTransfer(context.Background(), txn.ID, tt.actor)

			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
				assert.True(t, apperror.Is(err, apperror.KindForbidden))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.StatusCancelled, view.Status)
			require.NotNil(t, view.Reason)
			assert.Equal(t, tt.wantReason, *view.Reason)
		})
	}
}

func TestCancelTransfer_NotFound(t *testing.T) {
	uc, m := newTestUC(t)
	id := uuid.New()

	m.expectUnit()
	m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), id).
		Return(nil, apperror.NotFound(constants.MsgTransactionNotFound))

	_, err := uc.CancelTransfer(context.Background(), id, models.Principal{ID: uuid.New(), Role: models.RoleAdmin})
	assert.EqualError(t, err, constants.MsgTransactionNotFound)
}

func TestApproveTransfer_Success(t *testing.T) {
	uc, m := newTestUC(t)
	sender := account("150.00", true)
	receiver := account("10.00", true)
	txn := pendingTransfer(sender, receiver, "60.00")

	m.expectUnit()
	m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), txn.ID).Return(txn, nil)
	m.tx.EXPECT().LockAccounts(gomock.Any(), sender.ID, receiver.ID).
		Return(map[uuid.UUID]*models.Account{sender.ID: sender, receiver.ID: receiver}, nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), sender).Return(nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), receiver).Return(nil)
	m.tx.EXPECT().UpdateTransaction(gomock.Any(), txn).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	view, err := uc.ApproveTransfer(context.Background(), txn.ID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, view.Status)
	assert.Equal(t, "90.00", view.Sender.Balance.StringFixed(2))
	assert.Equal(t, "70.00", view.Receiver.Balance.StringFixed(2))
}

func TestApproveTransfer_InsufficientBalance(t *testing.T) {
	uc, m := newTestUC(t)
	sender := account("59.99", true)
	receiver := account("0", true)
	txn := pendingTransfer(sender, receiver, "60.00")

	m.expectUnit()
	m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), txn.ID).Return(txn, nil)
	m.tx.EXPECT().LockAccounts(gomock.Any(), sender.ID, receiver.ID).
		Return(map[uuid.UUID]*models.Account{sender.ID: sender, receiver.ID: receiver}, nil)

	_, err := uc.ApproveTransfer(context.Background(), txn.ID)

	assert.EqualError(t, err, constants.MsgSenderInsufficient)
	assert.True(t, apperror.Is(err, apperror.KindForbidden))
}

func TestApproveTransfer_NotPending(t *testing.T) {
	uc, m := newTestUC(t)
	txn := pendingTransfer(account("1", true), account("1", true), "1")
	txn.Status = models.StatusCancelled

	m.expectUnit()
	m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), txn.ID).Return(txn, nil)

	_, err := uc.ApproveTransfer(context.Background(), txn.ID)
	assert.EqualError(t, err, constants.MsgForbiddenOperation)
}

func TestApproveTransfer_WebhookFailure(t *testing.T) {
	uc, m := newTestUC(t)
	sender := account("100", true)
	receiver := account("0", true)
	txn := pendingTransfer(sender, receiver, "10")

	m.expectUnit()
	m.tx.EXPECT().GetTransactionForUpdate(gomock.Any(), txn.ID).Return(txn, nil)
	m.tx.EXPECT().LockAccounts(gomock.Any(), sender.ID, receiver.ID).
		Return(map[uuid.UUID]*models.Account{sender.ID: sender, receiver.ID: receiver}, nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.tx.EXPECT().UpdateTransaction(gomock.Any(), txn).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("webhook returned status 503"))

	_, err := uc.ApproveTransfer(context.Background(), txn.ID)

	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestDeactivateAccount_Forbidden(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.DeactivateAccount(context.Background(), uuid.New(),
		models.Principal{ID: uuid.New(), Role: models.RoleRegular})

	assert.EqualError(t, err, constants.MsgNoRights)
}

func TestDeactivateAccount_Success(t *testing.T) {
	uc, m := newTestUC(t)
	target := account("20", true)
	other := account("100", true)
	txn := pendingTransfer(other, target, "30")

	m.expectUnit()
	m.tx.EXPECT().LockAccounts(gomock.Any(), target.ID).
		Return(map[uuid.UUID]*models.Account{target.ID: target}, nil)
	m.tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Account) error {
			assert.False(t, a.IsActive)
			return nil
		})
	m.tx.EXPECT().ListPendingForUpdate(gomock.Any(), target.ID).Return([]*models.Transaction{txn}, nil)
	m.tx.EXPECT().UpdateTransaction(gomock.Any(), txn).Return(nil)
	m.tx.EXPECT().LoadParticipants(gomock.Any(), txn).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().RevokeSessions(gomock.Any(), target.ID).Return(errors.New("redis down"))
	m.gw.EXPECT().PublishTransactionEvent(gomock.Any(), gomock.Any()).Return(nil)

	view, err := uc.DeactivateAccount(context.Background(), target.ID,
		models.Principal{ID: target.ID, Role: models.RoleRegular})

	require.NoError(t, err)
	assert.False(t, view.IsActive)
	assert.Equal(t, models.StatusFailed, txn.Status)
	require.NotNil(t, txn.Reason)
	assert.Equal(t, constants.ReasonParticipantDeactivate, *txn.Reason)
}

func TestCascadeDeactivation_NothingPending(t *testing.T) {
	uc, m := newTestUC(t)
	id := uuid.New()

	m.expectUnit()
	m.tx.EXPECT().ListPendingForUpdate(gomock.Any(), id).Return([]*models.Transaction{}, nil)

	views, err := uc.CascadeDeactivation(context.Background(), id)

	require.NoError(t, err)
	assert.Empty(t, views)
}
