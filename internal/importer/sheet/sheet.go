// Package sheet holds the header and cell handling shared by the CSV
// importers.
package sheet

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrOutOfRange = errors.New("is out of range")

var (
	maxUnits = decimal.NewFromInt(math.MaxInt64)
	minUnits = maxUnits.Neg()
)

// Normalize folds a column name for lookup: case-insensitive, with
// surrounding space removed and inner runs of space collapsed.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Header maps normalized column names to their position in a row.
type Header map[string]int

func IndexHeader(row []string) Header {
	h := make(Header, len(row))

	for i, cell := range row {
		if name := Normalize(cell); name != "" {
			h[name] = i
		}
	}

	return h
}

// Has reports whether every named column is present.
func (h Header) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return false
		}
	}

	return true
}

// Cell returns the trimmed value of the named column, or "" when the column
// is unknown or the row is short.
func (h Header) Cell(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// Units converts a whole decimal to int64. The bounds are symmetric so the
// result can always be negated.
func Units(d decimal.Decimal) (int64, error) {
	if d.GreaterThan(maxUnits) || d.LessThan(minUnits) {
		return 0, ErrOutOfRange
	}

	return d.IntPart(), nil
}
