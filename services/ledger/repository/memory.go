package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

// MemoryRepo is an in-process ledger store. Units of work are serialized by
// one mutex and rolled back by restoring a snapshot.
type MemoryRepo struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]models.Account
	transactions map[uuid.UUID]models.Transaction
	last         time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		accounts:     make(map[uuid.UUID]models.Account),
		transactions: make(map[uuid.UUID]models.Transaction),
	}
}

// AddAccount stores or replaces an account, used to seed the store
func (r *MemoryRepo) AddAccount(account models.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	r.accounts[account.ID] = account
}

func (r *MemoryRepo) RunInTx(ctx context.Context, fn func(tx ledger.TxRepo) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	accounts := make(map[uuid.UUID]models.Account, len(r.accounts))
	for k, v := range r.accounts {
		accounts[k] = v
	}
	transactions := make(map[uuid.UUID]models.Transaction, len(r.transactions))
	for k, v := range r.transactions {
		transactions[k] = v
	}

	if err := fn(&memoryTx{repo: r}); err != nil {
		r.accounts, r.transactions = accounts, transactions
		return err
	}
	return nil
}

func (r *MemoryRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, id))
	}
	return &account, nil
}

func (r *MemoryRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*models.Transaction, 0)
	for _, t := range r.transactions {
		if matches(filter, &t) {
			txn := t
			matched = append(matched, &txn)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return strings.Compare(matched[i].ID.String(), matched[j].ID.String()) > 0
	})

	total := len(matched)
	if offset >= total {
		return []*models.Transaction{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *MemoryRepo) LoadParticipants(ctx context.Context, txs ...*models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadParticipants(txs)
	return nil
}

func (r *MemoryRepo) loadParticipants(txs []*models.Transaction) {
	lookup := func(id *uuid.UUID) *models.Account {
		if id == nil {
			return nil
		}
		if a, ok := r.accounts[*id]; ok {
			return &a
		}
		return nil
	}
	for _, t := range txs {
		t.Sender = lookup(t.SenderID)
		t.Receiver = lookup(t.ReceiverID)
	}
}

// now returns a strictly increasing timestamp so creation order is total
func (r *MemoryRepo) now() time.Time {
	now := time.Now().UTC()
	if !now.After(r.last) {
		now = r.last.Add(time.Microsecond)
	}
	r.last = now
	return now
}

func matches(f models.TransactionFilter, t *models.Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.ReceiverID != nil && (t.ReceiverID == nil || *t.ReceiverID != *f.ReceiverID) {
		return false
	}
	if f.ParticipantID != nil && !involves(t, *f.ParticipantID) {
		return false
	}
	return true
}

func involves(t *models.Transaction, accountID uuid.UUID) bool {
	return (t.SenderID != nil && *t.SenderID == accountID) ||
		(t.ReceiverID != nil && *t.ReceiverID == accountID)
}

// memoryTx runs with MemoryRepo.mu held
type memoryTx struct {
	repo *MemoryRepo
}

func (t *memoryTx) LockAccounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	out := make(map[uuid.UUID]*models.Account, len(ids))
	for _, id := range ids {
		if a, ok := t.repo.accounts[id]; ok {
			out[id] = &a
		}
	}
	return out, nil
}

func (t *memoryTx) UpdateAccount(ctx context.Context, account *models.Account) error {
	if _, ok := t.repo.accounts[account.ID]; !ok {
		return apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, account.ID))
	}
	account.UpdatedAt = t.repo.now()
	t.repo.accounts[account.ID] = *account
	return nil
}

func (t *memoryTx) GetTransactionForUpdate(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, ok := t.repo.transactions[id]
	if !ok {
		return nil, apperror.NotFound(constants.MsgTransactionNotFound)
	}
	return &txn, nil
}

func (t *memoryTx) ListPendingForUpdate(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	pending := make([]*models.Transaction, 0)
	for _, txn := range t.repo.transactions {
		if txn.Status == models.StatusPending && involves(&txn, accountID) {
			c := txn
			pending = append(pending, &c)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })
	return pending, nil
}

func (t *memoryTx) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if _, exists := t.repo.transactions[txn.ID]; exists {
		return apperror.Conflict("transaction already exists")
	}
	now := t.repo.now()
	txn.CreatedAt, txn.UpdatedAt = now, now
	t.repo.transactions[txn.ID] = stripped(txn)
	return nil
}

func (t *memoryTx) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	current, ok := t.repo.transactions[txn.ID]
	if !ok {
		return apperror.NotFound(constants.MsgTransactionNotFound)
	}
	current.Status = txn.Status
	current.Reason = txn.Reason
	current.UpdatedAt = t.repo.now()
	txn.UpdatedAt = current.UpdatedAt
	t.repo.transactions[txn.ID] = current
	return nil
}

func (t *memoryTx) LoadParticipants(ctx context.Context, txs ...*models.Transaction) error {
	t.repo.loadParticipants(txs)
	return nil
}

func stripped(txn *models.Transaction) models.Transaction {
	c := *txn
	c.Sender, c.Receiver = nil, nil
	return c
}
