package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is implemented by every screen the menu can open.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct{}

// BackMsg returns control to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	_ View = CreateModel{}
	_ View = ListModel{}
	_ View = SummaryModel{}
)
