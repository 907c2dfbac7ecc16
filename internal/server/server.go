// Package server boots the storefront HTTP server and its background
// components.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/electro05/storefront/app/routes"
	"github.com/electro05/storefront/app/services"
	"github.com/electro05/storefront/config"
	"github.com/electro05/storefront/pkg/cache"
	"github.com/electro05/storefront/pkg/event"
	"github.com/electro05/storefront/pkg/logger"
	"github.com/electro05/storefront/pkg/metrics"
	"github.com/electro05/storefront/pkg/middleware"
	"github.com/electro05/storefront/pkg/reqid"
	"github.com/electro05/storefront/pkg/router"
	"github.com/electro05/storefront/pkg/schedule"
	"github.com/electro05/storefront/pkg/session"
	"github.com/electro05/storefront/pkg/ws"
)

// Start boots everything and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		// Sessions degrade to per-request state without Redis; the
		// catalog pages still work.
		logger.Warn("server: redis unavailable", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hero pipeline: rotator → websocket hub.
	hub := ws.NewHub()
	go hub.Run()

	rotator := services.NewHeroRotator()
	rotator.OnFrame = func(frame services.HeroFrame) {
		if raw, err := json.Marshal(frame); err == nil {
			hub.Broadcast <- raw
		}
	}
	defer rotator.Stop()

	registerListeners()

	seedHero(ctx, rotator)
	schedule.Every(15).Minutes().Name("hero.refresh").WithoutOverlapping().Run(func() {
		seedHero(context.Background(), rotator)
	})
	schedule.Start(ctx)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(session.DefaultOptions()),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)

	routes.RegisterAPI(r, routes.Deps{
		Rotator: rotator,
		Gate:    services.NewPromoGate(),
		HeroHub: hub,
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// registerListeners hooks logging onto the domain events the handlers
// fire.
func registerListeners() {
	event.Listen("promo.unlocked", func(payload interface{}) {
		logger.Info("promotions unlocked", "session", payload)
	})
	event.Listen("cart.changed", func(payload interface{}) {
		logger.Debug("cart changed", "count", payload)
	})
}

// seedHero loads the promo products into the rotator. A failed fetch
// keeps the previous deck; the scheduler retries on its next pass.
func seedHero(ctx context.Context, rotator *services.HeroRotator) {
	catalog := services.NewCatalogService()
	products, err := catalog.Products(ctx, services.ProductQuery{Promo: true})
	if err != nil {
		logger.Warn("server: hero seed failed", "error", err)
		return
	}
	rotator.SetProducts(products)
	logger.Info("server: hero deck loaded", "slides", len(products))
}
