// Package all binds all the routes into the specified app.
package all

import (
	"time"

	"github.com/stayvie/floorplan/app/domain/authapp"
	"github.com/stayvie/floorplan/app/domain/checkapp"
	"github.com/stayvie/floorplan/app/domain/floorapp"
	"github.com/stayvie/floorplan/app/domain/outletapp"
	"github.com/stayvie/floorplan/app/domain/roomapp"
	"github.com/stayvie/floorplan/app/domain/userapp"
	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mux"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/floorbus/stores/floordb"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/domain/outletbus/stores/outletdb"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/domain/roombus/stores/roomdb"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/domain/userbus/stores/usercache"
	"github.com/stayvie/floorplan/business/domain/userbus/stores/userdb"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {
	userBus := userbus.NewCore(usercache.NewStore(cfg.Log, userdb.NewStore(cfg.Log, cfg.DB), 5*time.Minute))
	outletBus := outletbus.NewCore(cfg.Log, outletdb.NewStore(cfg.Log, cfg.DB))
	floorBus := floorbus.NewCore(cfg.Log, floordb.NewStore(cfg.Log, cfg.DB))
	roomBus := roombus.NewCore(cfg.Log, roomdb.NewStore(cfg.Log, cfg.DB))

	authClient := auth.New(auth.Config{
		Log:     cfg.Log,
		UserBus: userBus,
		Secret:  cfg.AuthConfig.Secret,
		Issuer:  cfg.AuthConfig.Issuer,
	})

	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	authapp.Routes(app, authapp.Config{
		Auth: authClient,
	})

	userapp.Routes(app, userapp.Config{
		Auth:    authClient,
		UserBus: userBus,
	})

	outletapp.Routes(app, outletapp.Config{
		Log:       cfg.Log,
		DB:        sqldb.NewBeginner(cfg.DB),
		Auth:      authClient,
		OutletBus: outletBus,
		FloorBus:  floorBus,
		Uploads:   cfg.Uploads,
	})

	floorapp.Routes(app, floorapp.Config{
		Log:           cfg.Log,
		DB:            sqldb.NewBeginner(cfg.DB),
		Auth:          authClient,
		OutletBus:     outletBus,
		FloorBus:      floorBus,
		RoomBus:       roomBus,
		Uploads:       cfg.Uploads,
		DefaultOutlet: cfg.DefaultOutlet,
	})

	roomapp.Routes(app, roomapp.Config{
		Auth:          authClient,
		OutletBus:     outletBus,
		FloorBus:      floorBus,
		RoomBus:       roomBus,
		DefaultOutlet: cfg.DefaultOutlet,
	})
}
