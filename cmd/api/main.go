package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kasa-labs/pricing-api/internal/cart"
	"github.com/kasa-labs/pricing-api/internal/catalog"
	"github.com/kasa-labs/pricing-api/internal/config"
	"github.com/kasa-labs/pricing-api/internal/events"
	"github.com/kasa-labs/pricing-api/internal/health"
	"github.com/kasa-labs/pricing-api/internal/invoice"
	"github.com/kasa-labs/pricing-api/internal/obs"
	"github.com/kasa-labs/pricing-api/internal/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if cfg.MetricsEnabled {
		obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	}

	inventory := catalog.NewInventory()
	if cfg.SeedFile != "" {
		seed, err := catalog.LoadSeed(cfg.SeedFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.SeedFile).Msg("load seed")
		}
		if err := seed.Apply(inventory); err != nil {
			logger.Fatal().Err(err).Str("path", cfg.SeedFile).Msg("apply seed")
		}
		logger.Info().
			Int("products", len(seed.Products)).
			Int("coupons", len(seed.Coupons)).
			Msg("catalog seeded")
	}

	bus := &events.Bus{Notifiers: []events.Notifier{
		events.LogNotifier{Logger: logger},
	}}
	if cfg.MetricsEnabled {
		bus.Notifiers = append(bus.Notifiers, events.MetricsNotifier{})
	}

	store := cart.NewStore(cfg.CartSessionLimit)

	catalogHandler := &catalog.Handler{
		Inventory: inventory,
		Bus:       bus,
		Validate:  validator.New(),
	}
	cartHandler := &cart.Handler{Inventory: inventory, Store: store, Bus: bus}
	invoiceHandler := &invoice.Handler{Store: store, Bus: bus}
	healthHandler := health.Handler{Stats: stats{inventory: inventory, carts: store}}

	var httpMetrics *obs.HTTPMetrics
	if cfg.MetricsEnabled {
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, nil, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(security.Headers)
	r.Use(security.BodyLimit{Max: cfg.MaxBodyBytes}.Middleware)
	r.Use(obs.RoutePatternMiddleware)
	if httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Get("/healthz", healthHandler.Live)
	r.Get("/readyz", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/products", catalogHandler.Products)
		v.Post("/products", catalogHandler.RegisterProduct)
		v.Get("/coupons", catalogHandler.Coupons)
		v.Post("/coupons", catalogHandler.RegisterCoupon)

		v.Route("/carts", func(c chi.Router) {
			c.Post("/", cartHandler.Create)
			c.Get("/{id}", cartHandler.Get)
			c.Post("/{id}/items", cartHandler.AddItem)
			c.Post("/{id}/coupon", cartHandler.ApplyCoupon)
			c.Get("/{id}/invoice", invoiceHandler.Render)
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		health.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown server")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
	logger.Info().Msg("server stopped")
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

type stats struct {
	inventory *catalog.Inventory
	carts     *cart.Store
}

func (s stats) Snapshot() health.Snapshot {
	return health.Snapshot{
		Products: len(s.inventory.Products()),
		Coupons:  len(s.inventory.Coupons()),
		Carts:    s.carts.Len(),
	}
}
