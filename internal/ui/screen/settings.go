package screen

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/token-settings/internal/settings"
	"github.com/rovshanmuradov/token-settings/internal/ui"
	"github.com/rovshanmuradov/token-settings/internal/ui/component"
	"github.com/rovshanmuradov/token-settings/internal/ui/router"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
)

// Submitter is the part of the settings form the screen drives.
type Submitter interface {
	OnInputChange(name, value string)
	Submit(ctx context.Context)
}

// SettingsScreen renders the token addition form.
type SettingsScreen struct {
	ctx    context.Context
	width  int
	height int
	keyMap ui.KeyMap
	logger *zap.Logger

	form    Submitter
	session *wallet.Session

	// UI components
	header  *component.StatusHeader
	input   *component.Form
	logs    *component.CompactLogViewer
	helpBar *component.HelpBar

	submitted int

	containerStyle lipgloss.Style
}

// NewSettingsScreen creates the settings screen. ctx bounds every submission
// started from it.
func NewSettingsScreen(ctx context.Context, form Submitter, session *wallet.Session, logs component.LogSource, logger *zap.Logger) *SettingsScreen {
	keyMap := ui.DefaultKeyMap()

	s := &SettingsScreen{
		ctx:     ctx,
		keyMap:  keyMap,
		logger:  logger.Named("settings-screen"),
		form:    form,
		session: session,
		header:  component.NewStatusHeader("Settings"),
		input: component.NewForm().
			AddField(settings.FieldTokenAddition, component.FieldTypeNumber, "Token Addition", true, "Add Tokens").
			SetFieldValue(settings.FieldTokenAddition, "0").
			SetSubmitLabel("Add Tokens"),
		logs:    component.NewCompactLogViewer(logs),
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteSettings)),

		containerStyle: lipgloss.NewStyle().
			Padding(1, 2),
	}
	s.refreshHeader()
	return s
}

// Init implements router.Screen
func (s *SettingsScreen) Init() tea.Cmd {
	s.refreshHeader()
	return nil
}

// Update implements router.Screen
func (s *SettingsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Submit):
			return s, s.submit()

		case key.Matches(msg, s.keyMap.Connect):
			return s, ui.Navigate(ui.RouteWallet)

		case key.Matches(msg, s.keyMap.Disconnect):
			s.session.Disconnect()
			s.refreshHeader()
			s.logger.Info("Wallet disconnected")
			return s, func() tea.Msg { return ui.WalletChangedMsg{} }

		case key.Matches(msg, s.keyMap.ToggleDebug):
			s.logs.ToggleDebug()
			return s, nil
		}

	case ui.WalletChangedMsg:
		s.refreshHeader()
		return s, nil

	case ui.SubmitDoneMsg:
		// Nothing to update; the result only goes to the log.
		return s, nil
	}

	var cmd tea.Cmd
	var changes []component.FieldChange
	s.input, changes, cmd = s.input.Update(msg)
	for _, change := range changes {
		s.form.OnInputChange(change.Name, change.Value)
	}
	return s, cmd
}

// submit starts one submission. Further submits are not blocked while it
// is in flight.
func (s *SettingsScreen) submit() tea.Cmd {
	s.submitted++
	seq := s.submitted
	form, ctx := s.form, s.ctx
	return func() tea.Msg {
		form.Submit(ctx)
		return ui.SubmitDoneMsg{Seq: seq}
	}
}

func (s *SettingsScreen) refreshHeader() {
	s.header.SetWallet(s.session.Name(), s.session.State())
}

// View implements router.Screen
func (s *SettingsScreen) View() string {
	return s.containerStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.header.View(),
		s.input.View(),
		s.logs.View(),
		s.helpBar.View(),
	))
}

// SetSize implements router.Screen
func (s *SettingsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height

	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	s.header.SetWidth(inner)
	s.input.SetWidth(min(inner, 40))
	s.helpBar.SetWidth(inner)

	logHeight := height - 16
	if logHeight < 5 {
		logHeight = 5
	}
	s.logs.SetSize(inner, logHeight)
}
