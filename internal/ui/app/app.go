// Package app holds the root bubbletea model of the settings client.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/token-settings/internal/ui"
	"github.com/rovshanmuradov/token-settings/internal/ui/component"
	"github.com/rovshanmuradov/token-settings/internal/ui/router"
	"github.com/rovshanmuradov/token-settings/internal/ui/screen"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
)

// Deps are the collaborators the screens are built from.
type Deps struct {
	Form    screen.Submitter
	Session *wallet.Session
	Wallets map[string]*wallet.Wallet
	Logs    component.LogSource
	Logger  *zap.Logger
}

// Model represents the main TUI application model
type Model struct {
	ctx    context.Context
	deps   Deps
	router *router.Router
	width  int
	height int
}

// New creates the application model with the settings screen on top.
func New(ctx context.Context, deps Deps) *Model {
	settingsScreen := screen.NewSettingsScreen(ctx, deps.Form, deps.Session, deps.Logs, deps.Logger)
	return &Model{
		ctx:    ctx,
		deps:   deps,
		router: router.New(settingsScreen),
	}
}

// Init initializes the application
func (m *Model) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ui.RouterMsg:
		return m, m.handleNavigation(msg.To)

	case ui.BackMsg:
		return m, m.router.Pop()
	}

	var cmd tea.Cmd
	m.router, cmd = m.router.Update(msg)
	return m, cmd
}

// handleNavigation handles navigation to different screens
func (m *Model) handleNavigation(route ui.Route) tea.Cmd {
	switch route {
	case ui.RouteSettings:
		if m.router.Depth() > 1 {
			return m.router.Pop()
		}
		return nil

	case ui.RouteWallet:
		return m.router.Push(screen.NewWalletScreen(m.deps.Session, m.deps.Wallets, m.deps.Logger))

	default:
		return nil
	}
}

// Depth returns how many screens are stacked.
func (m *Model) Depth() int {
	return m.router.Depth()
}

// View renders the application
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.router.View()
}
