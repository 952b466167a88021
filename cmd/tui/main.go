package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pocket/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/pocket/internal/config"
	"github.com/MrJamesThe3rd/pocket/internal/database"
	"github.com/MrJamesThe3rd/pocket/internal/transaction"
	txStore "github.com/MrJamesThe3rd/pocket/internal/transaction/store"
)

type model struct {
	appName   string
	txService *transaction.Service
	sessionID string

	currentView View

	createView  view.CreateModel
	listView    view.ListModel
	summaryView view.SummaryModel
}

type View int

const (
	ViewMenu    View = 0
	ViewCreate  View = 1
	ViewList    View = 2
	ViewSummary View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	sessionID := cfg.TUI.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	txSvc := transaction.NewService(txStore.New(db))

	return model{
		appName:     cfg.App.Name,
		txService:   txSvc,
		sessionID:   sessionID,
		currentView: ViewMenu,
		createView:  view.NewCreateModel(txSvc, sessionID),
		listView:    view.NewListModel(txSvc, sessionID),
		summaryView: view.NewSummaryModel(txSvc, sessionID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCreate
				m.createView = view.NewCreateModel(m.txService, m.sessionID)

				return m, m.createView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService, m.sessionID)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.txService, m.sessionID)

				return m, m.summaryView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCreate:
		var newModel tea.Model
		newModel, cmd = m.createView.Update(msg)
		m.createView = newModel.(view.CreateModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n" +
				lipgloss.NewStyle().Faint(true).Render("session "+m.sessionID) + "\n\n" +
				"1. New Transaction\n" +
				"2. List Transactions\n" +
				"3. Balance\n\n" +
				"q. Quit",
		)
	case ViewCreate:
		return m.createView.View()
	case ViewList:
		return m.listView.View()
	case ViewSummary:
		return m.summaryView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
