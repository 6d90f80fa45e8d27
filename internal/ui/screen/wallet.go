package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/token-settings/internal/ui"
	"github.com/rovshanmuradov/token-settings/internal/ui/component"
	"github.com/rovshanmuradov/token-settings/internal/ui/router"
	"github.com/rovshanmuradov/token-settings/internal/ui/style"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
)

// WalletScreen lets the user pick one of the loaded wallets to connect.
type WalletScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	logger *zap.Logger

	session *wallet.Session
	wallets map[string]*wallet.Wallet
	names   []string

	selectedIndex int
	helpBar       *component.HelpBar

	titleStyle    lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	keyStyle      lipgloss.Style
	emptyStyle    lipgloss.Style
}

// NewWalletScreen creates the wallet picker.
func NewWalletScreen(session *wallet.Session, wallets map[string]*wallet.Wallet, logger *zap.Logger) *WalletScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	ws := &WalletScreen{
		keyMap:  keyMap,
		logger:  logger.Named("wallet-screen"),
		session: session,
		wallets: wallets,
		names:   wallet.Names(wallets),
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteWallet)),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginBottom(1),

		itemStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			PaddingLeft(2),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			PaddingLeft(1),

		keyStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		emptyStyle: lipgloss.NewStyle().
			Foreground(palette.Warning),
	}

	// Start on the connected wallet if there is one.
	current := session.Name()
	for i, name := range ws.names {
		if name == current {
			ws.selectedIndex = i
		}
	}
	return ws
}

// Init implements router.Screen
func (ws *WalletScreen) Init() tea.Cmd {
	return nil
}

// Update implements router.Screen
func (ws *WalletScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(ws.names) == 0 {
		return ws, nil
	}

	switch {
	case key.Matches(keyMsg, ws.keyMap.Up):
		if ws.selectedIndex > 0 {
			ws.selectedIndex--
		}
	case key.Matches(keyMsg, ws.keyMap.Down):
		if ws.selectedIndex < len(ws.names)-1 {
			ws.selectedIndex++
		}
	case key.Matches(keyMsg, ws.keyMap.Enter):
		name := ws.names[ws.selectedIndex]
		w := ws.wallets[name]
		ws.session.Connect(name, w)
		ws.logger.Info("Wallet connected: "+name, zap.String("public_key", w.String()))
		return ws, tea.Sequence(ui.Back(), func() tea.Msg {
			return ui.WalletChangedMsg{Name: name, Connected: true}
		})
	}
	return ws, nil
}

// Selected returns the highlighted wallet name, or "" when none are loaded.
func (ws *WalletScreen) Selected() string {
	if len(ws.names) == 0 {
		return ""
	}
	return ws.names[ws.selectedIndex]
}

// View implements router.Screen
func (ws *WalletScreen) View() string {
	var b strings.Builder
	b.WriteString(ws.titleStyle.Render("Connect Wallet"))
	b.WriteString("\n")

	if len(ws.names) == 0 {
		b.WriteString(ws.emptyStyle.Render("No wallets loaded. Add them to the wallets file."))
		b.WriteString("\n")
	}

	for i, name := range ws.names {
		line := name + "  " + ws.keyStyle.Render(component.ShortenAddress(ws.wallets[name].String()))
		if i == ws.selectedIndex {
			b.WriteString(ws.selectedStyle.Render("▶ " + line))
		} else {
			b.WriteString(ws.itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(ws.helpBar.View())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetSize implements router.Screen
func (ws *WalletScreen) SetSize(width, height int) {
	ws.width = width
	ws.height = height
	ws.helpBar.SetWidth(max(width-4, 20))
}
