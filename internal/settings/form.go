// Package settings implements the token settings form: it keeps the pending
// token addition, combines it with the wallet connection on submit and sends
// the result to the add_tokens endpoint.
package settings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
)

// FieldTokenAddition is the input name of the amount field.
const FieldTokenAddition = "token_addition"

// FormState is the local state of the form.
type FormState struct {
	TokenAddition float64
}

// Form is the settings form component.
type Form struct {
	mu     sync.Mutex
	state  FormState
	wallet wallet.Provider
	client TokenAdder
	logger *zap.Logger
}

// NewForm creates a form with TokenAddition set to 0.
func NewForm(provider wallet.Provider, client TokenAdder, logger *zap.Logger) *Form {
	return &Form{
		wallet: provider,
		client: client,
		logger: logger.Named("settings-form"),
	}
}

// State returns a copy of the form state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OnInputChange stores the parsed value of the named input. Unparseable
// text is stored as NaN.
func (f *Form) OnInputChange(name, value string) {
	parsed := ParseFloat(value)

	switch name {
	case FieldTokenAddition:
		f.mu.Lock()
		f.state.TokenAddition = parsed
		f.mu.Unlock()
	default:
		f.logger.Debug("Ignoring input for unknown field", zap.String("field", name))
		return
	}

	if math.IsNaN(parsed) {
		f.logger.Debug("Token addition is not a number", zap.String("value", value))
	}
}

// Submit sends the current amount together with the wallet state read at
// this instant. Failures are logged, never returned.
func (f *Form) Submit(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error(fmt.Sprintf("Error: %v", r))
		}
	}()

	req := BuildRequest(f.wallet.State(), f.State())

	resp, err := f.client.AddTokens(ctx, req)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			f.logger.Error("Failed to add tokens",
				zap.Int("status", statusErr.StatusCode),
				zap.String("body", statusErr.Body))
			return
		}
		f.logger.Error("Error: "+err.Error(), zap.Error(err))
		return
	}

	if resp.TokenAmount == nil {
		f.logger.Warn("Current token amount: undefined")
		return
	}
	amount := strconv.FormatFloat(*resp.TokenAmount, 'f', -1, 64)
	f.logger.Info("Current token amount: "+amount,
		zap.Float64("token_amount", *resp.TokenAmount))
}
