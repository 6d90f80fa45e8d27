package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestPrettyLoggerDropsFieldsWhenNotDebug(t *testing.T) {
	var out bytes.Buffer
	log := newPrettyLogger(&out, false)

	log.Info("Current token amount: 42", zap.Float64("token_amount", 42))
	log.Debug("not shown")

	got := out.String()
	if !strings.Contains(got, "[INFO]") || !strings.Contains(got, "Current token amount: 42") {
		t.Errorf("Unexpected output: %q", got)
	}
	if strings.Contains(got, "token_amount") {
		t.Errorf("Fields should be filtered: %q", got)
	}
	if strings.Contains(got, "not shown") {
		t.Errorf("Debug entry should be filtered: %q", got)
	}
}

func TestPrettyLoggerDebugKeepsFields(t *testing.T) {
	var out bytes.Buffer
	log := newPrettyLogger(&out, true)

	log.Named("add-tokens-client").Debug("Sending add_tokens", zap.String("url", "http://localhost:8000/add_tokens"))

	got := out.String()
	for _, want := range []string{"[DEBUG]", "add-tokens-client", "Sending add_tokens", "localhost:8000"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output %q missing %q", got, want)
		}
	}
}

func TestCreateTUILoggerRequiresBuffer(t *testing.T) {
	if _, err := CreateTUILoggerWithBuffer(true, nil); err == nil {
		t.Error("Expected error without buffer")
	}
}
