package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/token-settings/internal/logger"
	"github.com/rovshanmuradov/token-settings/internal/ui"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopForm struct{ submits int }

func (f *nopForm) OnInputChange(string, string) {}

func (f *nopForm) Submit(context.Context) { f.submits++ }

type noLogs struct{}

func (noLogs) GetRecentLogs(int) []logger.LogEntry { return nil }

func newTestModel(t *testing.T) (*Model, *wallet.Session, *nopForm) {
	t.Helper()
	w, err := wallet.NewWallet(solana.NewWallet().PrivateKey.String())
	require.NoError(t, err)

	session := wallet.NewSession()
	form := &nopForm{}
	m := New(context.Background(), Deps{
		Form:    form,
		Session: session,
		Wallets: map[string]*wallet.Wallet{"main": w},
		Logs:    noLogs{},
		Logger:  zap.NewNop(),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, session, form
}

// drain runs cmd and feeds the resulting messages back into the model.
func drain(m *Model, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 10; i++ {
		_, cmd = m.Update(cmd())
	}
}

func TestModelConnectWalletFlow(t *testing.T) {
	m, session, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Settings")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	drain(m, cmd)
	require.Equal(t, 2, m.Depth())
	assert.Contains(t, m.View(), "Connect Wallet")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, session.State().Connected)

	// The picker asks to go back; the settings screen refreshes on return.
	m.Update(ui.BackMsg{})
	assert.Equal(t, 1, m.Depth())
	assert.Contains(t, m.View(), "connected (main)")
}

func TestModelEscReturnsToSettings(t *testing.T) {
	m, _, _ := newTestModel(t)
	drain(m, ui.Navigate(ui.RouteWallet))
	require.Equal(t, 2, m.Depth())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, m.Depth())
}

func TestModelSubmit(t *testing.T) {
	m, _, form := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.SubmitDoneMsg{Seq: 1}, cmd())
	assert.Equal(t, 1, form.submits)
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelViewBeforeSize(t *testing.T) {
	m := New(context.Background(), Deps{Session: wallet.NewSession(), Logger: zap.NewNop()})
	assert.Equal(t, "Initializing...", m.View())
}
