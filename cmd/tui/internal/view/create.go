package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/pocket/internal/transaction"
)

type createState int

const (
	createStateForm createState = iota
	createStateSaving
	createStateDone
)

// createFields lives on the heap so the form's value pointers stay valid
// across the model copies bubbletea makes.
type createFields struct {
	title  string
	amount string
	txType string
}

type CreateModel struct {
	CommonModel
	txService *transaction.Service
	sessionID string

	state  createState
	form   *huh.Form
	fields *createFields
	saved  *transaction.Transaction
	err    error
}

func NewCreateModel(txSvc *transaction.Service, sessionID string) CreateModel {
	fields := &createFields{txType: string(transaction.TypeCredit)}

	return CreateModel{
		txService: txSvc,
		sessionID: sessionID,
		fields:    fields,
		form:      buildCreateForm(fields),
	}
}

func buildCreateForm(f *createFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&f.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("5000").
				Value(&f.amount).
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Credit", string(transaction.TypeCredit)),
					huh.NewOption("Debit", string(transaction.TypeDebit)),
				).
				Value(&f.txType),
		),
	).WithWidth(50).WithShowHelp(false)
}

func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.New("amount must be a whole number")
	}

	if n < 0 {
		return 0, errors.New("amount cannot be negative; pick debit instead")
	}

	return n, nil
}

func (m CreateModel) Title() string { return "New Transaction" }

func (m CreateModel) ShortHelp() string {
	if m.state == createStateDone {
		return "Enter: add another | Esc: back"
	}

	return "Esc: back"
}

func (m CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(createSavedMsg); ok {
		m.state = createStateDone
		m.saved = saved.tx
		m.err = saved.err

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	switch m.state {
	case createStateForm:
		return m.updateForm(msg)
	case createStateDone:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
			next := NewCreateModel(m.txService, m.sessionID)
			return next, next.Init()
		}
	}

	return m, nil
}

func (m CreateModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = createStateSaving

	return m, m.saveCmd()
}

func (m CreateModel) View() string {
	switch m.state {
	case createStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")

	case createStateDone:
		var body string
		if m.err != nil {
			body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		} else {
			body = fmt.Sprintf("Saved %q (%s)", m.saved.Title, StyledAmount(m.saved.Amount))
		}

		return lipgloss.NewStyle().Padding(2).Render(body + "\n\n" + faintStyle.Render(m.ShortHelp()))
	}

	return lipgloss.NewStyle().Padding(1).Render(m.form.View() + "\n" + faintStyle.Render(m.ShortHelp()))
}

type createSavedMsg struct {
	tx  *transaction.Transaction
	err error
}

func (m CreateModel) saveCmd() tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		amount, err := parseAmount(f.amount)
		if err != nil {
			return createSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.txService.Create(ctx, transaction.CreateParams{
			SessionID: m.sessionID,
			Title:     f.title,
			Amount:    amount,
			Type:      transaction.Type(f.txType),
		})

		return createSavedMsg{tx: tx, err: err}
	}
}
