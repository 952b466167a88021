// Package export writes a session's ledger in the same CSV layout the
// csv importer reads, so an export can be imported into another session.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

var header = []string{"title", "amount", "type", "created_at"}

type Service struct {
	transactions *transaction.Service
}

func NewService(txService *transaction.Service) *Service {
	return &Service{transactions: txService}
}

// WriteCSV writes every transaction of the session to w in creation order.
// Amounts are written as magnitudes with the direction in the type column.
// It returns the number of rows written, excluding the header.
func (s *Service) WriteCSV(ctx context.Context, sessionID string, w io.Writer) (int, error) {
	txs, err := s.transactions.List(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		if err := cw.Write(record(tx)); err != nil {
			return 0, fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}

	return len(txs), nil
}

func record(tx *transaction.Transaction) []string {
	amount, txType := tx.Amount, transaction.TypeCredit
	if amount < 0 {
		amount, txType = -amount, transaction.TypeDebit
	}

	return []string{
		tx.Title,
		strconv.FormatInt(amount, 10),
		string(txType),
		tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}
