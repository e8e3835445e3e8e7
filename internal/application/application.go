package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/analytics"
	"github.com/rohinee/banksuite/internal/api"
	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/config"
	"github.com/rohinee/banksuite/internal/features"
	"github.com/rohinee/banksuite/internal/gateway"
	"github.com/rohinee/banksuite/internal/variant"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	resolver features.Resolver
	tracker  *analytics.Tracker
	gateway  *gateway.Gateway
	handler  *api.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	resolver := features.New(cfg.Identity)
	tracker := analytics.New(resolver.AnalyticsEnabled(), resolver.EnvironmentName(), logger)

	var opts []autopay.Option
	if !cfg.SimulateLatency {
		opts = append(opts, autopay.WithSleep(autopay.NoLatency))
	}
	gw := gateway.New(resolver.BankCode(), variant.Registry(opts...), logger)

	handler := api.NewHandler(resolver, gw, api.WithTracker(tracker))
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		resolver: resolver,
		tracker:  tracker,
		gateway:  gw,
		handler:  handler,
		router:   router,
		logger:   logger,
		server:   NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start logs the build identity, initializes analytics and starts the HTTP
// server in a goroutine.
func (a *App) Start() error {
	a.logger.Info("banksuite started",
		zap.String("bank", a.resolver.BankName()),
		zap.String("environment", a.resolver.EnvironmentName()),
		zap.String("base_url", a.resolver.BaseURL()),
		zap.String("version", a.resolver.Version()),
		zap.Strings("features", a.resolver.EnabledFeatures()),
	)
	a.tracker.Initialize()

	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Resolver returns the feature resolver for the running identity.
func (a *App) Resolver() features.Resolver {
	return a.resolver
}

// Gateway returns the auto-payment gateway.
func (a *App) Gateway() *gateway.Gateway {
	return a.gateway
}

// Tracker returns the analytics tracker.
func (a *App) Tracker() *analytics.Tracker {
	return a.tracker
}
