package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	bidding "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/biddingService"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/config"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/content"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/currency"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/i18n"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/identity"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/notify"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/remote"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/seed"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/server"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/vault"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.Configure(cfg.LogLevel, nil)

	store, err := newStorage(cfg)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"error": err.Error(), "dir": cfg.Vault.Dir})
	}
	v := vault.New(store, cfg.Vault.Namespace)
	repo := repository.NewVaultRepo(v)

	prices := currency.NewConverter(cfg.ReferenceCurrency)
	if cfg.SeedDemoData {
		if _, err := seed.Demo(repo, prices.ReferenceCode()); err != nil {
			utils.Error("failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		utils.Fatal("failed to load translations", map[string]any{"error": err.Error()})
	}

	remoteClient, err := remote.New(cfg.Remote.URL, cfg.Remote.APIKey)
	if err != nil {
		// the remote backend is optional, local storage keeps working without it
		utils.Warn("remote backend disabled", map[string]any{"error": err.Error()})
	}

	toasts := notify.NewQueue()
	engine := bidding.NewAuctionEngine(repo, toasts, prices.ReferenceCode())
	sessions := identity.NewManager(repo, toasts, cfg.LoginDelay, cfg.PaymentDelay)
	faq := content.NewFAQService(content.NewHTTPGenerator(cfg.Content.URL, cfg.Content.APIKey, cfg.Content.Model, cfg.Content.Timeout))

	router := server.SetupRouter(server.Dependencies{
		Engine:     engine,
		Identity:   sessions,
		Toasts:     toasts,
		Translator: translator,
		Prices:     prices,
		FAQ:        faq,
		Probe: func(ctx context.Context) bool {
			return remote.Probe(ctx, remoteClient, v)
		},
		Origin:          cfg.Origin,
		DefaultLanguage: cfg.DefaultLanguage,
	})

	httpServer := &http.Server{Addr: cfg.Addr(), Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{"addr": cfg.Addr(), "languages": translator.Languages()})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if remoteClient != nil {
			_ = remoteClient.Close()
		}
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.Fatal("server stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("server exited", nil)
}

// newStorage keeps state on disk when a vault directory is configured, in memory otherwise
func newStorage(cfg *config.Config) (vault.Storage, error) {
	if cfg.Vault.Dir == "" {
		return vault.NewMemoryStorage(cfg.Vault.QuotaBytes), nil
	}
	return vault.NewFileStorage(cfg.Vault.Dir, cfg.Vault.QuotaBytes)
}
