package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linetrack.dev/internal/app"
	"linetrack.dev/internal/appconf"
	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/restapi"
	"linetrack.dev/internal/webui"
)

func main() {
	appconf.LoadDotEnv(".env")

	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file named by -config and applies any flags
// that were set explicitly on top of it.
func loadConfig(args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		configPath  string
		port        int
		env         string
		apiKeysFlag string
		rateLimit   int
		logLevel    string
		source      string
		baseURL     string
		gtfsURL     string
	)
	fs.StringVar(&configPath, "config", "", "Path to a YAML config file")
	fs.IntVar(&port, "port", 4000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&rateLimit, "rate-limit", 100, "Requests per second per API key, 0 disables")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	fs.StringVar(&source, "catalog", appconf.SourceAPI, "Catalog source (api|gtfs)")
	fs.StringVar(&baseURL, "catalog-base-url", "", "Base URL of the catalog REST API")
	fs.StringVar(&gtfsURL, "gtfs-url", "", "Path or URL of a static GTFS zip file")
	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg, err := appconf.Load(configPath)
	if err != nil {
		return appconf.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(env)
		case "api-keys":
			cfg.ApiKeys = appconf.SplitList(apiKeysFlag)
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "log-level":
			cfg.LogLevel = logLevel
		case "catalog":
			cfg.Catalog.Source = source
		case "catalog-base-url":
			cfg.Catalog.BaseURL = baseURL
		case "gtfs-url":
			cfg.Catalog.GtfsURL = gtfsURL
		}
	})

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	cat, err := catalog.New(ctx, cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Catalog: cat,
	}
	api := restapi.NewRestAPI(application)
	defer api.Shutdown()
	webUI := &webui.WebUI{Application: application}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(webUI.SetWebUIRoutes),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "catalog", cfg.Catalog.Source)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
