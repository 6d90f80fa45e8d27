package wallet

import (
	"sync"

	"github.com/gagliardetto/solana-go"
)

// State is the wallet connection as seen by consumers.
type State struct {
	Connected bool
	PublicKey *solana.PublicKey
}

// PublicKeyBase58 returns the base58 key, or nil when there is no key.
func (s State) PublicKeyBase58() *string {
	if s.PublicKey == nil {
		return nil
	}
	encoded := s.PublicKey.String()
	return &encoded
}

// Provider exposes the current wallet connection read-only.
type Provider interface {
	State() State
}

// StaticProvider always reports the same state.
type StaticProvider State

// State implements Provider.
func (p StaticProvider) State() State {
	return State(p)
}

// Session tracks which wallet is connected. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	name   string
	wallet *Wallet
}

// NewSession returns a disconnected session.
func NewSession() *Session {
	return &Session{}
}

// Connect makes w the connected wallet. A nil wallet disconnects.
func (s *Session) Connect(name string, w *Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil {
		s.name, s.wallet = "", nil
		return
	}
	s.name, s.wallet = name, w
}

// Disconnect drops the connected wallet.
func (s *Session) Disconnect() {
	s.Connect("", nil)
}

// Name returns the name of the connected wallet, or "".
func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// State implements Provider.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wallet == nil {
		return State{}
	}
	pk := s.wallet.PublicKey
	return State{Connected: true, PublicKey: &pk}
}
