// Package mux provides support to bind domain level routes
// to the application mux.
package mux

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/uploads"
	"go.opentelemetry.io/otel/trace"
)

// StaticSite represents a directory on disk served under a URL prefix.
type StaticSite struct {
	urlPrefix string
	dir       string
}

// Options represent optional parameters.
type Options struct {
	corsOrigin []string
	sites      []StaticSite
}

// WithCORS provides configuration options for CORS.
func WithCORS(origins []string) func(opts *Options) {
	return func(opts *Options) {
		opts.corsOrigin = origins
	}
}

// WithFileServer serves the specified directory under the URL prefix.
func WithFileServer(urlPrefix string, dir string) func(opts *Options) {
	return func(opts *Options) {
		opts.sites = append(opts.sites, StaticSite{
			urlPrefix: urlPrefix,
			dir:       dir,
		})
	}
}

// AuthConfig contains auth specific config.
type AuthConfig struct {
	Secret string
	Issuer string
}

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Build         string
	Log           *logger.Logger
	DB            *sqlx.DB
	Tracer        trace.Tracer
	AuthConfig    AuthConfig
	Uploads       *uploads.Store
	DefaultOutlet slug.Slug
}

// RouteAdder defines behavior that sets the routes to bind for an instance
// of the service.
type RouteAdder interface {
	Add(app *web.App, cfg Config)
}

// WebAPI constructs a http.Handler with all application routes bound.
func WebAPI(cfg Config, routeAdder RouteAdder, options ...func(opts *Options)) http.Handler {
	app := web.NewApp(
		cfg.Log.Info,
		cfg.Tracer,
		mid.Otel(cfg.Tracer),
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Panics(),
	)

	var opts Options
	for _, option := range options {
		option(&opts)
	}

	if len(opts.corsOrigin) > 0 {
		app.EnableCORS(opts.corsOrigin)
	}

	routeAdder.Add(app, cfg)

	for _, site := range opts.sites {
		app.FileServer(site.urlPrefix, site.dir)
	}

	return app
}
