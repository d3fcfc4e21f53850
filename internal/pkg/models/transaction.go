package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes deposits from peer transfers
type TransactionKind string

const (
	KindDeposit  TransactionKind = "DEPOSIT"
	KindTransfer TransactionKind = "TRANSFER"
)

// TransactionStatus moves only from PENDING to one of the terminal states
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusCancelled TransactionStatus = "CANCELLED"
	StatusFailed    TransactionStatus = "FAILED"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusCancelled || s == StatusFailed
}

func (s TransactionStatus) Valid() bool {
	return s == StatusPending || s.IsTerminal()
}

func (k TransactionKind) Valid() bool {
	return k == KindDeposit || k == KindTransfer
}

// Transaction is a deposit or a transfer between two accounts.
// SenderID is nil for deposits. Reason is set only for CANCELLED and FAILED.
type Transaction struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	Amount     decimal.Decimal   `json:"amount" db:"amount"`
	Kind       TransactionKind   `json:"kind" db:"kind"`
	Status     TransactionStatus `json:"status" db:"status"`
	Reason     *string           `json:"reason" db:"reason"`
	SenderID   *uuid.UUID        `json:"sender_id" db:"sender_id"`
	ReceiverID *uuid.UUID        `json:"receiver_id" db:"receiver_id"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`

	Sender   *Account `json:"-" db:"-"`
	Receiver *Account `json:"-" db:"-"`
}

// Close moves a pending transaction to a terminal status with the given reason
func (t *Transaction) Close(status TransactionStatus, reason string) {
	t.Status = status
	if reason != "" {
		r := reason
		t.Reason = &r
	}
}

// ParticipantIDs returns the non-nil sender and receiver ids
func (t *Transaction) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2)
	if t.SenderID != nil {
		ids = append(ids, *t.SenderID)
	}
	if t.ReceiverID != nil {
		ids = append(ids, *t.ReceiverID)
	}
	return ids
}

// TransactionView is the public representation sent to clients and to the webhook
type TransactionView struct {
	ID         uuid.UUID         `json:"id"`
	Amount     decimal.Decimal   `json:"amount"`
	Kind       TransactionKind   `json:"kind"`
	Status     TransactionStatus `json:"status"`
	Reason     *string           `json:"reason"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Sender     *AccountView      `json:"sender,omitempty"`
	SenderID   *uuid.UUID        `json:"sender_id"`
	Receiver   *AccountView      `json:"receiver,omitempty"`
	ReceiverID *uuid.UUID        `json:"receiver_id"`
}

func (t *Transaction) View() *TransactionView {
	return &TransactionView{
		ID:         t.ID,
		Amount:     t.Amount,
		Kind:       t.Kind,
		Status:     t.Status,
		Reason:     t.Reason,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		Sender:     t.Sender.View(),
		SenderID:   t.SenderID,
		Receiver:   t.Receiver.View(),
		ReceiverID: t.ReceiverID,
	}
}

// TransactionFilter narrows a transaction listing. Zero values match everything.
type TransactionFilter struct {
	Kind          TransactionKind
	Status        TransactionStatus
	ReceiverID    *uuid.UUID
	ParticipantID *uuid.UUID // sender or receiver
}

// TransactionPage is one page of a transaction listing
type TransactionPage struct {
	TotalPages        int                `json:"total_pages"`
	TotalTransactions int                `json:"total_transactions"`
	Count             int                `json:"count"`
	Page              int                `json:"page"`
	Data              []*TransactionView `json:"data"`
}

// TransactionEvent is published after a ledger mutation commits
type TransactionEvent struct {
	Event       string           `json:"event"`
	Transaction *TransactionView `json:"transaction"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// DepositRequest is the body of a deposit call
type DepositRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// TransferRequest is the body of a transfer call
type TransferRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	ReceiverID string           `json:"receiver_id"`
}

// ValidateAmount accepts positive amounts with at most two decimal places
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.Validation("amount", constants.MsgAmountPositive)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return apperror.Validation("amount", constants.MsgAmountPrecision)
	}
	return nil
}
