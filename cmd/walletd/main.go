package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/sui-wallet/internal/api"
	"github.com/AlexZinkM/sui-wallet/internal/client"
	"github.com/AlexZinkM/sui-wallet/internal/config"
	"github.com/AlexZinkM/sui-wallet/internal/handler"
	"github.com/AlexZinkM/sui-wallet/internal/logger"
	"github.com/AlexZinkM/sui-wallet/internal/relay"
	"github.com/AlexZinkM/sui-wallet/wallet"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// @title        Sui Wallet API
// @version      1.0
// @description  Local wallet manager with an external signing relay
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	var passphrase []byte
	if cfg.WalletSealSecrets {
		if err := config.PromptForPassphrase(); err != nil {
			return err
		}
		var err error
		passphrase, err = config.GetPassphraseBytes()
		if err != nil {
			return err
		}
		defer clear(passphrase)
		defer config.ClearPassphrase()
	}

	// Signing relay store
	relayDir, err := homedir.Expand(cfg.RelayDataDir)
	if err != nil {
		return fmt.Errorf("failed to expand relay data dir: %w", err)
	}
	txStore, err := relay.Open(relay.Options{
		Dir:           relayDir,
		Retention:     cfg.RelayRetention,
		SweepInterval: cfg.RelaySweepInterval,
	}, log)
	if err != nil {
		return err
	}
	defer txStore.Close()
	txStore.Start()
	defer txStore.Stop()

	manager, err := wallet.NewManager(wallet.Options{
		FilePath:   config.GetWalletFilePath(),
		Passphrase: passphrase,
		Ledger:     client.NewSuiClient(config.GetSuiRPCURL(), config.GetRPCTimeout()),
		Relay:      client.NewRelayClient(config.GetRelayURL(), config.GetRPCTimeout()),
		Logger:     log,
	})
	if err != nil {
		return err
	}
	if err := manager.Load(); err != nil {
		// partial loads are usable
		log.Warn("some wallet sources failed to load", zap.Error(err))
	}
	log.Info("wallets loaded", zap.Int("count", len(manager.ListWallets())))

	router := api.SetupRouter(
		handler.NewWalletHandler(manager, config.GetRPCTimeout()),
		handler.NewRelayHandler(relay.NewService(txStore, config.GetRelayURL()), log),
	)

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case s := <-sig:
		log.Info("shutting down", zap.String("signal", s.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
