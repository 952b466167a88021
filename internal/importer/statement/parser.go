// Package statement reads semicolon separated bank statement exports. The
// header row may be preceded by any amount of account metadata; the first
// row naming every column of a known layout is taken as the header. Header
// names match regardless of case and spacing. Rows without a DD-MM-YYYY
// date, such as page footers, are skipped, as are rows that net to zero.
// Amounts are converted to minor units (cents).
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	enc "github.com/MrJamesThe3rd/pocket/internal/encoding"
	"github.com/MrJamesThe3rd/pocket/internal/importer/sheet"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

const dateLayout = "02-01-2006"

var ErrUnknownLayout = errors.New("no known statement layout found")

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	l, h, headerIdx := detectLayout(rows)
	if l == nil {
		return nil, ErrUnknownLayout
	}

	slog.Debug("parsing bank statement", "layout", l.name, "charset", charset)

	// Line numbers are 1-based; the header sits on line headerIdx+1.
	params := make([]transaction.CreateParams, 0, len(rows)-headerIdx-1)

	for i, row := range rows[headerIdx+1:] {
		line := headerIdx + i + 2

		param, ok, issue := parseRow(l, h, row)
		if issue != nil {
			return nil, &transaction.ValidationError{Row: line, Issues: []validation.Issue{*issue}}
		}

		if ok {
			params = append(params, param)
		}
	}

	return params, nil
}

// parseRow reports ok=false for rows that carry no transaction.
func parseRow(l *layout, h sheet.Header, row []string) (transaction.CreateParams, bool, *validation.Issue) {
	if _, err := time.Parse(dateLayout, h.Cell(row, l.date)); err != nil {
		return transaction.CreateParams{}, false, nil
	}

	title := h.Cell(row, l.title)
	if title == "" {
		return transaction.CreateParams{}, false, &validation.Issue{Field: "title", Message: "is required"}
	}

	net, err := l.net(h, row)
	if err != nil {
		return transaction.CreateParams{}, false, &validation.Issue{Field: "amount", Message: err.Error()}
	}

	cents, err := sheet.Units(net.Shift(2).Round(0))
	if err != nil {
		return transaction.CreateParams{}, false, &validation.Issue{Field: "amount", Message: err.Error()}
	}

	switch {
	case cents == 0:
		return transaction.CreateParams{}, false, nil
	case cents < 0:
		return transaction.CreateParams{Title: title, Amount: -cents, Type: transaction.TypeDebit}, true, nil
	default:
		return transaction.CreateParams{Title: title, Amount: cents, Type: transaction.TypeCredit}, true, nil
	}
}
