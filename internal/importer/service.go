package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/pocket/internal/importer/csvledger"
	"github.com/MrJamesThe3rd/pocket/internal/importer/statement"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

var ErrUnknownFormat = errors.New("unknown import format")

type Service struct {
	importers map[Format]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatCSV:       csvledger.NewParser(),
			FormatStatement: statement.NewParser(),
		},
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	if format == "" {
		format = FormatCSV
	}

	imp, ok := s.importers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return imp.Parse(r)
}
