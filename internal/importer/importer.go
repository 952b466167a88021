package importer

import (
	"io"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

type Format string

const (
	FormatCSV       Format = "csv"
	FormatStatement Format = "statement"
)

// Importer turns an uploaded file into create params. Session ids are not
// set; the transaction service assigns them.
type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
