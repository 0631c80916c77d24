package checkapp

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/foundation/logger"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Build string
	Log   *logger.Logger
	DB    *sqlx.DB
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	api := newApp(cfg.Build, cfg.Log, cfg.DB)

	app.HandlerFuncNoMid(http.MethodGet, group, "/liveness", api.liveness)
	app.HandlerFuncNoMid(http.MethodGet, group, "/readiness", api.readiness)
}
