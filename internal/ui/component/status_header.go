package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/token-settings/internal/ui/style"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
)

// StatusHeader shows the page title and the wallet connection.
type StatusHeader struct {
	title      string
	walletName string
	state      wallet.State
	style      StatusHeaderStyle
	width      int
}

// StatusHeaderStyle contains all styling for the status header
type StatusHeaderStyle struct {
	container    lipgloss.Style
	title        lipgloss.Style
	key          lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
}

// NewStatusHeader creates a new status header component
func NewStatusHeader(title string) *StatusHeader {
	palette := style.DefaultPalette()

	return &StatusHeader{
		title: title,
		style: StatusHeaderStyle{
			container: lipgloss.NewStyle().
				Foreground(palette.Text).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.TextMuted).
				Padding(0, 2).
				MarginBottom(1),

			title: lipgloss.NewStyle().
				Foreground(palette.Text).
				Bold(true),

			key: lipgloss.NewStyle().
				Foreground(palette.TextSecondary),

			connected: lipgloss.NewStyle().
				Foreground(palette.Success).
				Bold(true),

			disconnected: lipgloss.NewStyle().
				Foreground(palette.Error).
				Bold(true),
		},
	}
}

// SetWallet updates the displayed connection.
func (sh *StatusHeader) SetWallet(name string, state wallet.State) {
	sh.walletName = name
	sh.state = state
}

// SetWidth sets the header width
func (sh *StatusHeader) SetWidth(width int) {
	sh.width = width
}

// View renders the status header
func (sh *StatusHeader) View() string {
	status := sh.style.disconnected.Render("● not connected")
	if sh.state.Connected {
		label := "● connected"
		if sh.walletName != "" {
			label += " (" + sh.walletName + ")"
		}
		status = sh.style.connected.Render(label)
		if key := sh.state.PublicKeyBase58(); key != nil {
			status += "  " + sh.style.key.Render(ShortenAddress(*key))
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center,
		sh.style.title.Render(sh.title),
		"   ",
		status,
	)

	container := sh.style.container
	if sh.width > 4 {
		container = container.Width(sh.width - 2)
	}
	return container.Render(content)
}

// ShortenAddress abbreviates a base58 key to its first and last four characters.
func ShortenAddress(addr string) string {
	if len(addr) > 12 {
		return addr[:4] + "..." + addr[len(addr)-4:]
	}
	return addr
}
