package userapp

import (
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/role"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth    *auth.Auth
	UserBus *userbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	authen := mid.Authenticate(cfg.Auth)
	admin := mid.Authorize(cfg.Auth, role.Admin)

	api := newApp(cfg.UserBus)

	app.HandlerFunc(http.MethodGet, group, "/users", api.query, authen, admin)
	app.HandlerFunc(http.MethodGet, group, "/users/{user_id}", api.queryByID, authen, admin)
	app.HandlerFunc(http.MethodPost, group, "/users", api.create, authen, admin)
	app.HandlerFunc(http.MethodPut, group, "/users/{user_id}", api.update, authen, admin)
	app.HandlerFunc(http.MethodDelete, group, "/users/{user_id}", api.delete, authen, admin)
}
