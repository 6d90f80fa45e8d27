package settings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientAddTokensSuccess(t *testing.T) {
	bodies := make(chan []byte, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add_tokens", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		bodies <- body
		_, _ = w.Write([]byte(`{"token_amount": 42, "extra": true}`))
	}))
	defer srv.Close()

	key := "ABC123"
	c := NewClient(srv.URL+"/add_tokens", ClientOptions{}, zap.NewNop())
	resp, err := c.AddTokens(context.Background(), Request{IsConnected: true, PublicKey: &key, TokenAddition: 5})
	require.NoError(t, err)
	require.NotNil(t, resp.TokenAmount)
	assert.Equal(t, 42.0, *resp.TokenAmount)
	assert.JSONEq(t, `{"is_connected":true,"public_key":"ABC123","token_addition":5}`, string(<-bodies))
}

func TestClientAddTokensStatusError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "wallet not connected", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ClientOptions{Retries: 3}, zap.NewNop())
	_, err := c.AddTokens(context.Background(), Request{})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "wallet not connected")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestClientNoRetryByDefault(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ClientOptions{}, zap.NewNop())
	_, err := c.AddTokens(context.Background(), Request{})
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]float64{"token_amount": 7})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ClientOptions{Retries: 2}, zap.NewNop())
	resp, err := c.AddTokens(context.Background(), Request{TokenAddition: 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, *resp.TokenAmount)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>ok</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ClientOptions{Retries: 2}, zap.NewNop())
	_, err := c.AddTokens(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, ClientOptions{}, zap.NewNop())
	_, err := c.AddTokens(context.Background(), Request{})
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, ClientOptions{Timeout: 50 * time.Millisecond}, zap.NewNop())
	start := time.Now()
	_, err := c.AddTokens(context.Background(), Request{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
