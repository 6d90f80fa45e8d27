package settings

import (
	"encoding/json"
	"math"

	"github.com/rovshanmuradov/token-settings/internal/wallet"
)

// Amount is a token quantity. Values that have no JSON number form (NaN, ±Inf)
// are encoded as null.
type Amount float64

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Request is the body of an add_tokens call.
type Request struct {
	IsConnected   bool    `json:"is_connected"`
	PublicKey     *string `json:"public_key"`
	TokenAddition Amount  `json:"token_addition"`
}

// Response is the part of the add_tokens reply the client reads.
type Response struct {
	TokenAmount *float64 `json:"token_amount"`
}

// BuildRequest combines the wallet state with the entered amount. A
// disconnected wallet never contributes a public key.
func BuildRequest(state wallet.State, form FormState) Request {
	req := Request{
		IsConnected:   state.Connected,
		TokenAddition: Amount(form.TokenAddition),
	}
	if state.Connected {
		req.PublicKey = state.PublicKeyBase58()
	}
	return req
}
