package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

type transactionResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type listResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

type getResponse struct {
	Transaction transactionResponse `json:"transaction"`
}

type summaryResponse struct {
	Summary struct {
		Amount int64 `json:"amount"`
	} `json:"summary"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

type validationErrorResponse struct {
	Error  string             `json:"error"`
	Row    int                `json:"row,omitempty"`
	Issues []validation.Issue `json:"issues"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		SessionID: tx.SessionID,
		Title:     tx.Title,
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toSummaryResponse(s *transaction.Summary) summaryResponse {
	var resp summaryResponse
	resp.Summary.Amount = s.Amount

	return resp
}
