package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

type SummaryModel struct {
	CommonModel
	txService *transaction.Service
	sessionID string

	spinner spinner.Model
	loading bool
	summary *transaction.Summary
	err     error
}

func NewSummaryModel(txSvc *transaction.Service, sessionID string) SummaryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return SummaryModel{
		txService: txSvc,
		sessionID: sessionID,
		spinner:   s,
		loading:   true,
	}
}

func (m SummaryModel) Title() string { return "Balance" }

func (m SummaryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m SummaryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
	}

	if !m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m SummaryModel) View() string {
	var body string

	switch {
	case m.loading:
		body = fmt.Sprintf("%s Calculating balance...", m.spinner.View())
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	default:
		body = fmt.Sprintf("Balance: %s", lipgloss.NewStyle().Bold(true).Render(StyledAmount(m.summary.Amount)))
	}

	return lipgloss.NewStyle().Padding(2).Render(body + "\n\n" + faintStyle.Render(m.ShortHelp()))
}

type summaryMsg struct {
	summary *transaction.Summary
	err     error
}

func (m SummaryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.txService.Summarize(ctx, m.sessionID)

		return summaryMsg{summary: s, err: err}
	}
}
