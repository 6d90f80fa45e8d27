package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type stubScreen struct {
	name    string
	inits   int
	updates int
	w, h    int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View() string { return s.name }

func (s *stubScreen) SetSize(w, h int) { s.w, s.h = w, h }

func TestRouterPushPop(t *testing.T) {
	root := &stubScreen{name: "settings"}
	r := New(root)
	r.SetSize(100, 40)

	picker := &stubScreen{name: "wallet"}
	r.Push(picker)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "wallet", r.View())
	assert.Equal(t, 100, picker.w)
	assert.Equal(t, 1, picker.inits)

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "settings", r.View())
	assert.Equal(t, 1, root.inits)

	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
}

func TestRouterEscPopsOnlyAboveRoot(t *testing.T) {
	root := &stubScreen{name: "settings"}
	r := New(root)

	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, root.updates, "esc on the root screen is forwarded")

	r.Push(&stubScreen{name: "wallet"})
	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, root, r.Current())
}

func TestRouterWindowSize(t *testing.T) {
	root := &stubScreen{name: "settings"}
	r := New(root)
	r.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, 120, root.w)
	assert.Equal(t, 30, root.h)
	assert.Zero(t, root.updates)
}

func TestRouterReplace(t *testing.T) {
	r := New(&stubScreen{name: "a"})
	r.Replace(&stubScreen{name: "b"})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "b", r.View())
}
