package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/pocket/internal/validation"
)

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError is returned when create input is rejected.
// Nothing is written to storage when it occurs.
type ValidationError struct {
	// Row is the 1-based position within a batch, 0 for single creates.
	Row    int
	Issues []validation.Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.Field + " " + is.Message
	}

	msg := strings.Join(parts, "; ")
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, msg)
	}

	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
