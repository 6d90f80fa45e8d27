package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/token-settings/internal/config"
	"github.com/rovshanmuradov/token-settings/internal/logger"
	"github.com/rovshanmuradov/token-settings/internal/settings"
	"github.com/rovshanmuradov/token-settings/internal/ui"
	"github.com/rovshanmuradov/token-settings/internal/ui/app"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	// Create context with signal handling
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The TUI owns the terminal, so all logs go to the ring buffer.
	logBuffer, err := logger.NewLogBuffer(cfg.LogBufferSize, cfg.LogSpillFile, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to create log buffer: %v", err)
	}
	flushDone := logBuffer.StartPeriodicFlush(time.Second)
	defer func() {
		close(flushDone)
		if err := logBuffer.Close(); err != nil {
			log.Printf("Failed to close log buffer: %v", err)
		}
	}()

	appLogger, err := logger.CreateTUILoggerWithBuffer(cfg.DebugLogging, logBuffer)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Starting token settings",
		zap.String("add_tokens_url", cfg.AddTokensURL),
		zap.Int("retries", cfg.Retries),
		zap.Duration("timeout", cfg.RequestTimeout))

	session := wallet.NewSession()
	wallets, err := wallet.LoadWallets(cfg.WalletsFile)
	if err != nil {
		appLogger.Warn("No wallets available: "+err.Error(), zap.String("file", cfg.WalletsFile))
		wallets = map[string]*wallet.Wallet{}
	}
	if cfg.Wallet != "" {
		if w, ok := wallets[cfg.Wallet]; ok {
			session.Connect(cfg.Wallet, w)
			appLogger.Info("Wallet connected: "+cfg.Wallet, zap.String("public_key", w.String()))
		} else {
			appLogger.Warn("Configured wallet not found: " + cfg.Wallet)
		}
	}

	client := settings.NewClient(cfg.AddTokensURL, settings.ClientOptions{
		Timeout: cfg.RequestTimeout,
		Retries: cfg.Retries,
	}, appLogger)
	form := settings.NewForm(session, client, appLogger)

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	recovery := ui.NewRecoveryHandler(appLogger, func() (tea.Model, []tea.ProgramOption) {
		model := app.New(ctx, app.Deps{
			Form:    form,
			Session: session,
			Wallets: wallets,
			Logs:    logBuffer,
			Logger:  appLogger,
		})
		return model, []tea.ProgramOption{tea.WithAltScreen()}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return recovery.RunWithRecovery()
	})
	g.Go(func() error {
		<-gctx.Done()
		recovery.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("TUI application failed", zap.Error(err))
		log.Printf("TUI application failed: %v", err)
	}
	appLogger.Info("Shutting down token settings")
}
