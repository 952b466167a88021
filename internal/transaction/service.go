package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

// Repository is the storage backend for transactions. Every read is scoped
// by session id; there is no lookup by id alone.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, sessionID string) ([]*Transaction, error)
	SumAmounts(ctx context.Context, sessionID string) (int64, error)

	BeginBatch(ctx context.Context) (BatchTx, error)
}

type BatchTx interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries caller input. Amount is a magnitude and negative
// values are rejected; Type decides the sign that gets stored.
type CreateParams struct {
	SessionID string `json:"session_id" validate:"required"`
	Title     string `json:"title" validate:"required,notblank"`
	Amount    int64  `json:"amount" validate:"gte=0"`
	Type      Type   `json:"type" validate:"required,oneof=credit debit"`
}

func (p CreateParams) validate(row int) error {
	if issues := validation.Struct(p); len(issues) > 0 {
		return &ValidationError{Row: row, Issues: issues}
	}

	return nil
}

func (p CreateParams) toTransaction() *Transaction {
	return &Transaction{
		SessionID: p.SessionID,
		Title:     p.Title,
		Amount:    p.Type.Sign(p.Amount),
	}
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(0); err != nil {
		return nil, err
	}

	tx := params.toTransaction()
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns the session's transactions in creation order. A session with
// no transactions yields an empty, non-nil slice.
func (s *Service) List(ctx context.Context, sessionID string) ([]*Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if txs == nil {
		txs = []*Transaction{}
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, sessionID string, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, sessionID, id)
}

// Summarize recomputes the session balance from stored rows on every call.
func (s *Service) Summarize(ctx context.Context, sessionID string) (*Summary, error) {
	total, err := s.repo.SumAmounts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Summary{Amount: total}, nil
}

// ImportBatch creates all params under sessionID atomically. Every row is
// validated before anything is written.
func (s *Service) ImportBatch(ctx context.Context, sessionID string, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return []*Transaction{}, nil
	}

	txs := make([]*Transaction, len(params))

	for i, p := range params {
		p.SessionID = sessionID
		if err := p.validate(i + 1); err != nil {
			return nil, err
		}

		txs[i] = p.toTransaction()
	}

	btx, err := s.repo.BeginBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer btx.Rollback()

	if err := btx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return txs, nil
}
