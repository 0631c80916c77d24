package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stayvie/floorplan/api/cmd/build/all"
	"github.com/stayvie/floorplan/app/sdk/mux"
	"github.com/stayvie/floorplan/business/sdk/migrate"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/otel"
	"github.com/stayvie/floorplan/foundation/uploads"
)

var build = "develop"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		DebugHost          string        `envconfig:"WEB_DEBUG_HOST" default:"0.0.0.0:3010"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	Auth struct {
		Secret string `envconfig:"AUTH_SECRET" default:"dev-only-secret" json:"-"`
		Issuer string `envconfig:"AUTH_ISSUER" default:"floorplan"`
	}
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres" json:"-"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"floorplan"`
		Schema       string `envconfig:"DB_SCHEMA" default:""`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Uploads struct {
		Dir       string `envconfig:"UPLOADS_DIR" default:"uploads"`
		PublicURL string `envconfig:"UPLOADS_PUBLIC_URL" default:"http://localhost:3000"`
	}
	Defaults struct {
		OutletSlug    string `envconfig:"DEFAULT_OUTLET_SLUG" default:"bhaskara-osix"`
		OutletName    string `envconfig:"DEFAULT_OUTLET_NAME" default:"Bhaskara Osix"`
		CompanyName   string `envconfig:"DEFAULT_COMPANY_NAME" default:"Stayvie Co-Living"`
		AdminName     string `envconfig:"DEFAULT_ADMIN_NAME" default:"Admin"`
		AdminEmail    string `envconfig:"DEFAULT_ADMIN_EMAIL" default:"admin@stayvie.com"`
		AdminPassword string `envconfig:"DEFAULT_ADMIN_PASSWORD" default:"" json:"-"`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:"tempo:4317"`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"FLOORPLAN"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
		Enabled     bool    `envconfig:"TEMPO_ENABLED" default:"false"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	log = logger.NewWithEvents(os.Stdout, logger.LevelInfo, "FLOORPLAN", otel.GetTraceID, events)

	// -------------------------------------------------------------------------

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "FLOORPLAN"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	defaultOutlet, err := slug.Parse(cfg.Defaults.OutletSlug)
	if err != nil {
		return fmt.Errorf("parsing default outlet slug: %w", err)
	}

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))
	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Database Support

	log.Info(ctx, "startup", "status", "initializing database support", "hostport", cfg.DB.Host)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		Schema:       cfg.DB.Schema,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}

	defer db.Close()

	// -------------------------------------------------------------------------
	// Migrations and Seed Data

	log.Info(ctx, "startup", "status", "running migrations")

	if err := migrate.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating db: %w", err)
	}

	if err := migrate.Seed(ctx, log, db, migrate.SeedConfig{
		OutletSlug:    cfg.Defaults.OutletSlug,
		OutletName:    cfg.Defaults.OutletName,
		CompanyName:   cfg.Defaults.CompanyName,
		AdminName:     cfg.Defaults.AdminName,
		AdminEmail:    cfg.Defaults.AdminEmail,
		AdminPassword: cfg.Defaults.AdminPassword,
	}); err != nil {
		return fmt.Errorf("seeding db: %w", err)
	}

	// -------------------------------------------------------------------------
	// Uploads Support

	log.Info(ctx, "startup", "status", "initializing uploads support", "dir", cfg.Uploads.Dir)

	uploadStore := uploads.New(cfg.Uploads.Dir, cfg.Uploads.PublicURL)
	if err := uploadStore.EnsureDir(); err != nil {
		return fmt.Errorf("creating uploads dir: %w", err)
	}

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/api/liveness":  {},
			"/api/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
		Enabled:     cfg.Tempo.Enabled,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Start Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug router started", "host", cfg.Web.DebugHost)

		if err := http.ListenAndServe(cfg.Web.DebugHost, expvar.Handler()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "err", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:  cfg.Version.Build,
		Log:    log,
		DB:     db,
		Tracer: tracer,
		AuthConfig: mux.AuthConfig{
			Secret: cfg.Auth.Secret,
			Issuer: cfg.Auth.Issuer,
		},
		Uploads:       uploadStore,
		DefaultOutlet: defaultOutlet,
	}

	webAPI := mux.WebAPI(cfgMux,
		all.Routes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
		mux.WithFileServer("/uploads", uploadStore.Dir()),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func sanitizeConfig(cfg Config) string {
	cfg.DB.Password = "[MASKED]"
	cfg.Auth.Secret = "[MASKED]"
	cfg.Defaults.AdminPassword = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
