package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	retryInitialInterval = 250 * time.Millisecond
	maxErrorBody         = 4 << 10
)

// ErrMalformedResponse is returned when a 2xx reply is not valid JSON.
var ErrMalformedResponse = errors.New("malformed add_tokens response")

// StatusError is returned when the backend answers outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("add_tokens returned status %d", e.StatusCode)
}

// TokenAdder sends add_tokens requests.
type TokenAdder interface {
	AddTokens(ctx context.Context, req Request) (*Response, error)
}

// ClientOptions configures a Client. Zero values keep the single-attempt,
// no-timeout behavior.
type ClientOptions struct {
	Timeout    time.Duration
	Retries    int
	HTTPClient *http.Client
}

// Client posts add_tokens requests to a fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	retries  int
	logger   *zap.Logger
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ClientOptions, logger *zap.Logger) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		endpoint: endpoint,
		http:     hc,
		retries:  opts.Retries,
		logger:   logger.Named("add-tokens-client"),
	}
}

// AddTokens posts req as JSON and decodes the reply.
func (c *Client) AddTokens(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if c.retries == 0 {
		return c.post(ctx, body)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval

	notify := func(err error, d time.Duration) {
		c.logger.Warn("add_tokens failed, retrying", zap.Error(err), zap.Duration("backoff", d))
	}

	operation := func() (*Response, error) {
		resp, err := c.post(ctx, body)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrMalformedResponse) {
			return nil, backoff.Permanent(err)
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(c.retries+1)),
		backoff.WithNotify(notify))
}

func (c *Client) post(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Sending add_tokens", zap.String("url", c.endpoint), zap.ByteString("body", body))

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("add_tokens request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: httpResp.StatusCode, Body: string(snippet)}
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &resp, nil
}
