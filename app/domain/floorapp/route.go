package floorapp

import (
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/uploads"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log           *logger.Logger
	DB            sqldb.Beginner
	Auth          *auth.Auth
	OutletBus     *outletbus.Core
	FloorBus      *floorbus.Core
	RoomBus       *roombus.Core
	Uploads       *uploads.Store
	DefaultOutlet slug.Slug
}

// Routes adds specific routes for this group. Every route is registered
// twice: outlet scoped and as a legacy alias that targets the default outlet.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	authen := mid.Authenticate(cfg.Auth)
	transaction := mid.BeginCommitRollback(cfg.Log, cfg.DB)

	api := newApp(cfg.OutletBus, cfg.FloorBus, cfg.RoomBus, cfg.Uploads, cfg.DefaultOutlet)

	for _, prefix := range []string{"/outlets/{slug}", ""} {
		app.HandlerFunc(http.MethodGet, group, prefix+"/floors", api.query)
		app.HandlerFunc(http.MethodGet, group, prefix+"/floors/{level}", api.queryByLevel)
		app.HandlerFunc(http.MethodPost, group, prefix+"/floors", api.create, authen)
		app.HandlerFunc(http.MethodPut, group, prefix+"/floors/{level}", api.update, authen)
		app.HandlerFunc(http.MethodDelete, group, prefix+"/floors/{level}", api.delete, authen, transaction)
		app.HandlerFunc(http.MethodPost, group, prefix+"/floors/{level}/image", api.uploadImage, authen)
	}
}
