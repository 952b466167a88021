// Package csvledger reads ledger exports of the form
//
//	title,amount,type
//	Salary,5000,credit
//	Rent,2000,debit
//
// Columns may appear in any order and header names are case-insensitive.
// The delimiter is ',' or ';', chosen from the header line. When the type
// column is absent, the sign of amount decides the direction.
package csvledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/pocket/internal/encoding"
	"github.com/MrJamesThe3rd/pocket/internal/importer/sheet"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

const (
	colTitle  = "title"
	colAmount = "amount"
	colType   = "type"
)

var ErrMissingColumns = errors.New("csv header must contain title and amount columns")

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	body, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(body)))
	reader.Comma = detectDelimiter(string(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	cols := sheet.IndexHeader(rows[0])
	if !cols.Has(colTitle, colAmount) {
		return nil, ErrMissingColumns
	}

	slog.Debug("parsing ledger csv", "charset", charset, "rows", len(rows)-1)

	return parseRows(cols, rows[1:])
}

// detectDelimiter picks ';' when the header line has more semicolons than commas.
func detectDelimiter(body string) rune {
	header, _, _ := strings.Cut(body, "\n")
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}

	return ','
}

func parseRows(cols sheet.Header, rows [][]string) ([]transaction.CreateParams, error) {
	params := make([]transaction.CreateParams, 0, len(rows))

	for i, row := range rows {
		// 1-based data row within the file, header excluded.
		rowNum := i + 1

		if sheet.IsBlank(row) {
			continue
		}

		p, issue := parseRow(cols, row)
		if issue != nil {
			return nil, &transaction.ValidationError{
				Row:    rowNum,
				Issues: []validation.Issue{*issue},
			}
		}

		params = append(params, p)
	}

	return params, nil
}

func parseRow(cols sheet.Header, row []string) (transaction.CreateParams, *validation.Issue) {
	title := cols.Cell(row, colTitle)
	rawAmount := cols.Cell(row, colAmount)

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return transaction.CreateParams{}, &validation.Issue{Field: colAmount, Message: err.Error()}
	}

	rawType := cols.Cell(row, colType)

	var txType transaction.Type

	switch {
	case rawType != "":
		txType = transaction.Type(strings.ToLower(rawType))
		if !txType.Valid() {
			return transaction.CreateParams{}, &validation.Issue{Field: colType, Message: "must be one of: credit, debit"}
		}
	case amount < 0:
		txType = transaction.TypeDebit
		amount = -amount
	default:
		txType = transaction.TypeCredit
	}

	return transaction.CreateParams{
		Title:  title,
		Amount: amount,
		Type:   txType,
	}, nil
}

// parseAmount accepts whole numbers, optionally written with a zero
// fractional part ("5000", "-20", "12.00").
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.New("must be a number")
	}

	if !d.IsInteger() {
		return 0, errors.New("must be a whole number")
	}

	n, err := sheet.Units(d)
	if err != nil {
		return 0, err
	}

	return n, nil
}
