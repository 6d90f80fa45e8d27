package ui

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// RecoveryHandler runs the TUI and restarts it after a crash.
type RecoveryHandler struct {
	logger       *zap.Logger
	restartDelay time.Duration
	maxRestarts  int
	restartCount int
	stopped      bool
	mu           sync.Mutex
	program      *tea.Program
	createUI     func() (tea.Model, []tea.ProgramOption)
}

// NewRecoveryHandler creates a new recovery handler
func NewRecoveryHandler(logger *zap.Logger, createUI func() (tea.Model, []tea.ProgramOption)) *RecoveryHandler {
	return &RecoveryHandler{
		logger:       logger.Named("ui-recovery"),
		restartDelay: 2 * time.Second,
		maxRestarts:  3,
		createUI:     createUI,
	}
}

// WithLimits overrides the restart delay and the restart budget.
func (rh *RecoveryHandler) WithLimits(delay time.Duration, maxRestarts int) *RecoveryHandler {
	rh.restartDelay = delay
	rh.maxRestarts = maxRestarts
	return rh
}

// RunWithRecovery runs the UI until it exits normally, Stop is called or the
// restart budget is used up.
func (rh *RecoveryHandler) RunWithRecovery() error {
	for {
		err := rh.runUI()

		rh.mu.Lock()
		if err == nil || rh.stopped {
			rh.mu.Unlock()
			return nil
		}

		rh.restartCount++
		if rh.restartCount > rh.maxRestarts {
			rh.mu.Unlock()
			return fmt.Errorf("UI crashed too many times (%d), giving up: %w", rh.maxRestarts, err)
		}

		rh.logger.Error("UI crashed, will restart",
			zap.Error(err),
			zap.Int("restart_count", rh.restartCount),
			zap.Duration("delay", rh.restartDelay))
		rh.mu.Unlock()

		time.Sleep(rh.restartDelay)
	}
}

func (rh *RecoveryHandler) runUI() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("UI panic: %v", r)
			rh.logger.Error("UI panic recovered",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
		}
	}()

	model, opts := rh.createUI()
	program := tea.NewProgram(model, opts...)

	rh.mu.Lock()
	if rh.stopped {
		rh.mu.Unlock()
		return nil
	}
	rh.program = program
	rh.mu.Unlock()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// Stop quits the running program and prevents restarts.
func (rh *RecoveryHandler) Stop() {
	rh.mu.Lock()
	defer rh.mu.Unlock()

	rh.stopped = true
	if rh.program != nil {
		rh.program.Quit()
		rh.program = nil
	}
}

// GetRestartCount returns the number of restarts
func (rh *RecoveryHandler) GetRestartCount() int {
	rh.mu.Lock()
	defer rh.mu.Unlock()
	return rh.restartCount
}
