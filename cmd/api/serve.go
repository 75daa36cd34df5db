package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/adapters/auth/session"
	"pet-adoption/internal/adapters/ipinfo/ipify"
	"pet-adoption/internal/adapters/media/disk"
	"pet-adoption/internal/adapters/notify/telegram"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/telemetry"
	"pet-adoption/internal/ports/notify"
	"pet-adoption/internal/router"
	"pet-adoption/internal/worker/notifications"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func runServe(ctx context.Context, cfg config.Config, log logger.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.AppName,
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	stores, err := openAndSeed(ctx, cfg, log, cfg.SeedReset)
	if err != nil {
		return err
	}
	defer stores.Close()

	images, err := disk.NewStore(cfg.ImagesDir)
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(session.Config{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Issuer: cfg.AppName,
	})
	if err != nil {
		return err
	}
	if cfg.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD not set: admin login disabled", nil)
	}

	var notifier notify.Notifier
	if cfg.TelegramEnabled() {
		tg, err := telegram.NewClient(telegram.Config{
			BaseURL:   cfg.TelegramAPIBase,
			BotToken:  cfg.TelegramBotToken,
			ChatID:    cfg.TelegramChatID,
			UserAgent: cfg.AppName,
		})
		if err != nil {
			return err
		}
		notifier = tg
	} else {
		log.Info("telegram not configured: adoption notifications disabled", nil)
	}
	dispatcher := notifications.NewDispatcher(notifier, notifications.Options{
		QueueSize: cfg.NotifyQueueSize,
		Logger:    log,
	})

	resolver, err := ipify.NewClient(ipify.Config{
		URL:       cfg.IPLookupURL,
		Override:  cfg.PublicIPOverride,
		UserAgent: cfg.AppName,
	})
	if err != nil {
		return err
	}

	handler := router.NewRouter(router.Options{
		Logger:        log,
		PetRepo:       stores.Pets,
		SiteRepo:      stores.Site,
		Images:        images,
		Notifier:      dispatcher,
		IPResolver:    resolver,
		AuthVerifier:  sessions,
		SessionIssuer: sessions,
		AdminPassword: cfg.AdminPassword,
		ImagesDir:     images.Dir(),
		FrontendDir:   cfg.FrontendDir,
		TrustProxy:    cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// el dispatcher se detiene después del server: lo encolado por requests en vuelo se entrega
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": stores.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return dispatcher.Run(dispatchCtx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)
		stopDispatch()
		return err
	})

	return g.Wait()
}
