package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/application"
	"github.com/rohinee/banksuite/internal/config"
	"github.com/rohinee/banksuite/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("banksuite", "BankSuite - per-bank feature flags and auto payment service")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	bankCode := kingpinApp.Flag("bank", "Bank code override (A, B or C)").String()
	baseURL := kingpinApp.Flag("base-url", "Environment base URL override").String()
	noLatency := kingpinApp.Flag("no-latency", "Disable simulated backend latency").Bool()

	serveCmd := kingpinApp.Command("serve", "Run the HTTP API").Default()
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	infoCmd := kingpinApp.Command("info", "Print the build identity and enabled features")

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		NoLatency:  *noLatency,
	}

	if *bankCode != "" {
		overrides.BankCode = bankCode
	}

	if *baseURL != "" {
		overrides.BaseURL = baseURL
	}

	if *port != "" {
		overrides.Port = port
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.Identity.LoggingEnabled)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if command == infoCmd.FullCommand() {
		printInfo(os.Stdout, app)
		return
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	app.Tracker().Flush()
}

func printInfo(w io.Writer, app *application.App) {
	resolver := app.Resolver()
	gw := app.Gateway()

	fmt.Fprintln(w, resolver.AppInfo())
	fmt.Fprintf(w, "Features: %s\n", strings.Join(resolver.EnabledFeatures(), ", "))
	fmt.Fprintf(w, "Auto Payment: %s\n", gw.Description())

	if !gw.Available() {
		return
	}
	manager, ok := gw.Resolve()
	if !ok {
		fmt.Fprintln(w, "Auto Payment implementation: not loaded")
		return
	}
	fmt.Fprintf(w, "Auto Payment service: %s (fee $%s, limit $%s)\n",
		manager.ServiceName(),
		manager.Fee().StringFixed(2),
		manager.MaxAmount().StringFixed(2),
	)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
