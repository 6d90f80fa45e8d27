// Command addtokens submits one token addition without the TUI.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/rovshanmuradov/token-settings/internal/config"
	"github.com/rovshanmuradov/token-settings/internal/logger"
	"github.com/rovshanmuradov/token-settings/internal/settings"
	"github.com/rovshanmuradov/token-settings/internal/wallet"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (defaults and environment when empty)")
	walletName := flag.String("wallet", "", "Wallet to connect, by name from the wallets file")
	amount := flag.String("amount", "0", "Token addition, parsed like the form input")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	name := *walletName
	if name == "" {
		name = cfg.Wallet
	}

	session := wallet.NewSession()
	if name != "" {
		wallets, err := wallet.LoadWallets(cfg.WalletsFile)
		if err != nil {
			appLogger.Fatal("Failed to load wallets", zap.Error(err))
		}
		w, ok := wallets[name]
		if !ok {
			appLogger.Fatal("Wallet not found: "+name, zap.Strings("available", wallet.Names(wallets)))
		}
		session.Connect(name, w)
		appLogger.Info("Wallet connected: "+name, zap.String("public_key", w.String()))
	}

	client := settings.NewClient(cfg.AddTokensURL, settings.ClientOptions{
		Timeout: cfg.RequestTimeout,
		Retries: cfg.Retries,
	}, appLogger)
	form := settings.NewForm(session, client, appLogger)

	form.OnInputChange(settings.FieldTokenAddition, *amount)
	form.Submit(ctx)
}
