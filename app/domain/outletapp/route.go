package outletapp

import (
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/role"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/uploads"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log       *logger.Logger
	DB        sqldb.Beginner
	Auth      *auth.Auth
	OutletBus *outletbus.Core
	FloorBus  *floorbus.Core
	Uploads   *uploads.Store
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	authen := mid.Authenticate(cfg.Auth)
	admin := mid.Authorize(cfg.Auth, role.Admin)
	transaction := mid.BeginCommitRollback(cfg.Log, cfg.DB)

	api := newApp(cfg.OutletBus, cfg.FloorBus, cfg.Uploads)

	app.HandlerFunc(http.MethodGet, group, "/outlets", api.query)
	app.HandlerFunc(http.MethodGet, group, "/outlets/{slug}", api.queryBySlug)
	app.HandlerFunc(http.MethodPost, group, "/outlets", api.create, authen, admin)
	app.HandlerFunc(http.MethodPut, group, "/outlets/{slug}", api.update, authen, admin)
	app.HandlerFunc(http.MethodDelete, group, "/outlets/{slug}", api.delete, authen, admin, transaction)
}
