package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ledger/internal/pkg/apperror"
	"github.com/piresc/ledger/internal/pkg/constants"
	"github.com/piresc/ledger/internal/pkg/models"
	"github.com/piresc/ledger/services/ledger"
)

const (
	accountColumns     = `id, email, role, balance, is_active, created_at, updated_at`
	transactionColumns = `id, amount, kind, status, reason, sender_id, receiver_id, created_at, updated_at`
)

// PostgresRepo implements ledger.LedgerRepo on PostgreSQL
type PostgresRepo struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) ledger.LedgerRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) RunInTx(ctx context.Context, fn func(tx ledger.TxRepo) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.GetContext(ctx, &account, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf(constants.MsgAccountNotFound, id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *PostgresRepo) ListTransactions(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, int, error) {
	where, args := whereClause(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM transactions`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)+1, len(args)+2)
	txs := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

func (r *PostgresRepo) LoadParticipants(ctx context.Context, txs ...*models.Transaction) error {
	return loadParticipants(ctx, r.db, txs)
}

// pgTx implements ledger.TxRepo on an open database transaction
type pgTx struct {
	tx *sqlx.Tx
}

func (t *pgTx) LockAccounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*models.Account, error) {
	accounts := make(map[uuid.UUID]*models.Account, len(ids))
	for _, id := range sortedUnique(ids) {
		var account models.Account
		err := t.tx.GetContext(ctx, &account, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock account: %w", err)
		}
		accounts[id] = &account
	}
	return accounts, nil
}

func (t *pgTx) UpdateAccount(ctx context.Context, account *models.Account) error {
	account.UpdatedAt = time.Now().UTC()
	res, err := t.tx.ExecContext(ctx,
		`UPDATE accounts SET balance = $1, is_active = $2, updated_at = $3 WHERE id = $4`,
		account.Balance, account.IsActive, account.UpdatedAt, account.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return expectOneRow(res, fmt.Sprintf(constants.MsgAccountNotFound, account.ID))
}

func (t *pgTx) GetTransactionForUpdate(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := t.tx.GetContext(ctx, &txn, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound(constants.MsgTransactionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (t *pgTx) ListPendingForUpdate(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	txs := []*models.Transaction{}
	err := t.tx.SelectContext(ctx, &txs,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE status = $1 AND (sender_id = $2 OR receiver_id = $2)
		ORDER BY created_at, id FOR UPDATE`,
		models.StatusPending, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return txs, nil
}

func (t *pgTx) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now().UTC()
	txn.CreatedAt, txn.UpdatedAt = now, now

	_, err := t.tx.NamedExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		VALUES (:id, :amount, :kind, :status, :reason, :sender_id, :receiver_id, :created_at, :updated_at)`,
		txn)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now().UTC()
	res, err := t.tx.ExecContext(ctx,
		`UPDATE transactions SET status = $1, reason = $2, updated_at = $3 WHERE id = $4`,
		txn.Status, txn.Reason, txn.UpdatedAt, txn.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return expectOneRow(res, constants.MsgTransactionNotFound)
}

func (t *pgTx) LoadParticipants(ctx context.Context, txs ...*models.Transaction) error {
	return loadParticipants(ctx, t.tx, txs)
}

// loadParticipants fills Sender and Receiver with one IN query
func loadParticipants(ctx context.Context, q sqlx.ExtContext, txs []*models.Transaction) error {
	var ids []uuid.UUID
	for _, txn := range txs {
		ids = append(ids, txn.ParticipantIDs()...)
	}
	ids = sortedUnique(ids)
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT `+accountColumns+` FROM accounts WHERE id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("failed to build participants query: %w", err)
	}
	accounts := []*models.Account{}
	if err := sqlx.SelectContext(ctx, q, &accounts, q.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	for _, txn := range txs {
		if txn.SenderID != nil {
			txn.Sender = byID[*txn.SenderID]
		}
		if txn.ReceiverID != nil {
			txn.Receiver = byID[*txn.ReceiverID]
		}
	}
	return nil
}

func whereClause(f models.TransactionFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Kind != "" {
		args = append(args, f.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.ReceiverID != nil {
		args = append(args, *f.ReceiverID)
		conds = append(conds, fmt.Sprintf("receiver_id = $%d", len(args)))
	}
	if f.ParticipantID != nil {
		args = append(args, *f.ParticipantID)
		conds = append(conds, fmt.Sprintf("(sender_id = $%d OR receiver_id = $%d)", len(args), len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func expectOneRow(res sql.Result, notFound string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperror.NotFound(notFound)
	}
	return nil
}

// sortedUnique orders ids so that row locks are always taken in the same order
func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].String(), out[j].String()) < 0
	})
	return out
}
