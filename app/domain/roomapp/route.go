package roomapp

import (
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/slug"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth          *auth.Auth
	OutletBus     *outletbus.Core
	FloorBus      *floorbus.Core
	RoomBus       *roombus.Core
	DefaultOutlet slug.Slug
}

// Routes adds specific routes for this group. Every route is registered
// twice: outlet scoped and as a legacy alias that targets the default outlet.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	authen := mid.Authenticate(cfg.Auth)

	api := newApp(cfg.OutletBus, cfg.FloorBus, cfg.RoomBus, cfg.DefaultOutlet)

	for _, prefix := range []string{"/outlets/{slug}", ""} {
		app.HandlerFunc(http.MethodPost, group, prefix+"/floors/{level}/rooms", api.create, authen)
		app.HandlerFunc(http.MethodPut, group, prefix+"/rooms/{code}", api.update, authen)
		app.HandlerFunc(http.MethodDelete, group, prefix+"/rooms/{code}", api.delete, authen)
		app.HandlerFunc(http.MethodPatch, group, prefix+"/rooms/bulk-status", api.bulkStatus, authen)
	}
}
