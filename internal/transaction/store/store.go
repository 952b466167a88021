package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, session_id, title, amount, created_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	if err := s.Scan(&tx.ID, &tx.SessionID, &tx.Title, &tx.Amount, &tx.CreatedAt); err != nil {
		return nil, err
	}

	return &tx, nil
}

const selectTransactionColumns = `id, session_id, title, amount, created_at`

const insertTransaction = `
	INSERT INTO transactions (session_id, title, amount, created_at)
	VALUES ($1, $2, $3, NOW())
	RETURNING id, created_at
`

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q queryRower, tx *transaction.Transaction) error {
	err := q.QueryRowContext(ctx, insertTransaction,
		tx.SessionID,
		tx.Title,
		tx.Amount,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return insert(ctx, s.db, tx)
}

func (s *Store) GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND session_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, sessionID string) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE session_id = $1
		ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := []*transaction.Transaction{}

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) SumAmounts(ctx context.Context, sessionID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::bigint
		FROM transactions
		WHERE session_id = $1
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, sessionID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing transactions: %w", err)
	}

	return total, nil
}

type batchTx struct {
	tx *sql.Tx
}

func (s *Store) BeginBatch(ctx context.Context) (transaction.BatchTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning batch tx: %w", err)
	}

	return &batchTx{tx: dbTx}, nil
}

func (b *batchTx) Commit() error   { return b.tx.Commit() }
func (b *batchTx) Rollback() error { return b.tx.Rollback() }

func (b *batchTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	for _, tx := range txs {
		if err := insert(ctx, b.tx, tx); err != nil {
			return err
		}
	}

	return nil
}
