package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dbTimeout = 5 * time.Second

var (
	creditStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	debitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// FormatAmount renders a signed amount with an explicit sign.
func FormatAmount(amount int64) string {
	if amount > 0 {
		return fmt.Sprintf("+%d", amount)
	}

	return fmt.Sprintf("%d", amount)
}

// StyledAmount colours credits green and debits red.
func StyledAmount(amount int64) string {
	s := FormatAmount(amount)
	if amount < 0 {
		return debitStyle.Render(s)
	}

	return creditStyle.Render(s)
}

// FormatTime formats a timestamp as YYYY-MM-DD HH:MM.
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
