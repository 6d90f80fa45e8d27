package settings

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestDisconnected(t *testing.T) {
	pk := solana.NewWallet().PublicKey()

	for _, amount := range []float64{0, 5, -1, math.NaN()} {
		req := BuildRequest(wallet.State{Connected: false, PublicKey: &pk}, FormState{TokenAddition: amount})
		assert.False(t, req.IsConnected)
		assert.Nil(t, req.PublicKey)
	}
}

func TestBuildRequestConnected(t *testing.T) {
	pk := solana.NewWallet().PublicKey()
	req := BuildRequest(wallet.State{Connected: true, PublicKey: &pk}, FormState{TokenAddition: 5})

	assert.True(t, req.IsConnected)
	require.NotNil(t, req.PublicKey)
	assert.Equal(t, pk.String(), *req.PublicKey)
	assert.Equal(t, Amount(5), req.TokenAddition)
}

func TestRequestJSON(t *testing.T) {
	key := "ABC123"
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "connected",
			req:  Request{IsConnected: true, PublicKey: &key, TokenAddition: 5},
			want: `{"is_connected":true,"public_key":"ABC123","token_addition":5}`,
		},
		{
			name: "disconnected",
			req:  Request{TokenAddition: 2.5},
			want: `{"is_connected":false,"public_key":null,"token_addition":2.5}`,
		},
		{
			name: "NaN amount",
			req:  Request{TokenAddition: Amount(math.NaN())},
			want: `{"is_connected":false,"public_key":null,"token_addition":null}`,
		},
		{
			name: "infinite amount",
			req:  Request{TokenAddition: Amount(math.Inf(1))},
			want: `{"is_connected":false,"public_key":null,"token_addition":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestResponseIgnoresExtraFields(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"token_amount":42,"owner":"x"}`), &resp))
	require.NotNil(t, resp.TokenAmount)
	assert.Equal(t, 42.0, *resp.TokenAmount)
}
