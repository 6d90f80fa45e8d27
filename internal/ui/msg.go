package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Tea message types for UI communication

// RouterMsg requests navigation to another screen
type RouterMsg struct {
	To Route
}

// BackMsg requests a return to the previous screen
type BackMsg struct{}

// SubmitDoneMsg is sent when one add_tokens submission has finished,
// whatever its outcome.
type SubmitDoneMsg struct {
	Seq int
}

// WalletChangedMsg is sent after a wallet was connected or disconnected.
type WalletChangedMsg struct {
	Name      string
	Connected bool
}

// Navigate returns a command that emits a RouterMsg
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Back returns a command that emits a BackMsg
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// Route represents different screens in the application
type Route int

const (
	RouteSettings Route = iota
	RouteWallet
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteSettings:
		return "settings"
	case RouteWallet:
		return "wallet"
	default:
		return "unknown"
	}
}
