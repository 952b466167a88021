package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

type ListModel struct {
	CommonModel
	txService *transaction.Service
	sessionID string

	table   table.Model
	txs     []*transaction.Transaction
	detail  *transaction.Transaction
	loading bool
	err     error
	status  string
}

func NewListModel(txSvc *transaction.Service, sessionID string) ListModel {
	columns := []table.Column{
		{Title: "Created", Width: 17},
		{Title: "Amount", Width: 12},
		{Title: "Title", Width: 40},
		{Title: "ID", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		txService: txSvc,
		sessionID: sessionID,
		table:     t,
		loading:   true,
	}
}

func (m ListModel) Title() string { return "Transactions" }

func (m ListModel) ShortHelp() string {
	return "Esc: back | Enter: details | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.txs = msg.txs
		m.detail = nil
		m.refreshTable()

		return m, nil

	case loadDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading transaction: %v", msg.err)
			return m, nil
		}

		m.detail = msg.tx
		m.status = ""

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.txs) {
				return m, nil
			}

			return m, m.loadDetailCmd(m.txs[idx].ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if len(m.txs) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(
			"No transactions in this session yet.\n\n" + faintStyle.Render(m.ShortHelp()),
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.detail != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf(
				"%s\n\nAmount:  %s\nCreated: %s\nID:      %s",
				lipgloss.NewStyle().Bold(true).Render(m.detail.Title),
				StyledAmount(m.detail.Amount),
				FormatTime(m.detail.CreatedAt),
				m.detail.ID,
			))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + faintStyle.Render(m.ShortHelp()))
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatTime(tx.CreatedAt),
			FormatAmount(tx.Amount),
			tx.Title,
			tx.ID.String(),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.sessionID)

		return loadListMsg{txs: txs, err: err}
	}
}

type loadDetailMsg struct {
	tx  *transaction.Transaction
	err error
}

func (m ListModel) loadDetailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.txService.Get(ctx, m.sessionID, id)

		return loadDetailMsg{tx: tx, err: err}
	}
}
