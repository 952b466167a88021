package statement

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pocket/internal/importer/sheet"
)

var errNotANumber = errors.New("must be a number")

// netFunc returns the signed net movement of a row in currency units:
// positive money in, negative money out, zero when the row moves nothing.
type netFunc func(h sheet.Header, row []string) (decimal.Decimal, error)

// layout is one bank export format, identified by its header. Column names
// are in sheet.Normalize form.
type layout struct {
	name    string
	date    string
	title   string
	amounts []string
	net     netFunc
}

func (l layout) columns() []string {
	return append([]string{l.date, l.title}, l.amounts...)
}

// Checked in order; a header matching several layouts takes the first.
var layouts = []layout{
	{
		name:    "card",
		date:    "data",
		title:   "descrição",
		amounts: []string{"débito", "crédito"},
		net:     debitCredit("débito", "crédito"),
	},
	{
		name:    "extract",
		date:    "data mov.",
		title:   "descrição",
		amounts: []string{"movimento"},
		net:     signedColumn("movimento"),
	},
	{
		name:    "account",
		date:    "data mov.",
		title:   "descrição",
		amounts: []string{"montante"},
		net:     signedColumn("montante"),
	},
}

func detectLayout(rows [][]string) (*layout, sheet.Header, int) {
	for i, row := range rows {
		h := sheet.IndexHeader(row)

		for j := range layouts {
			if h.Has(layouts[j].columns()...) {
				return &layouts[j], h, i
			}
		}
	}

	return nil, nil, 0
}

func signedColumn(col string) netFunc {
	return func(h sheet.Header, row []string) (decimal.Decimal, error) {
		return europeanDecimal(h.Cell(row, col))
	}
}

// debitCredit nets two unsigned columns. Either may be empty.
func debitCredit(debitCol, creditCol string) netFunc {
	return func(h sheet.Header, row []string) (decimal.Decimal, error) {
		debit, err := europeanDecimal(h.Cell(row, debitCol))
		if err != nil {
			return decimal.Zero, err
		}

		credit, err := europeanDecimal(h.Cell(row, creditCol))
		if err != nil {
			return decimal.Zero, err
		}

		return credit.Abs().Sub(debit.Abs()), nil
	}
}

// europeanDecimal reads "1.234,56" style numbers. An empty cell is zero.
func europeanDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, errNotANumber
	}

	return d, nil
}
