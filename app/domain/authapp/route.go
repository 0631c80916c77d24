package authapp

import (
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/sdk/web"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth *auth.Auth
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const group = "api"

	authen := mid.Authenticate(cfg.Auth)

	api := newApp(cfg.Auth)

	app.HandlerFunc(http.MethodPost, group, "/auth/login", api.login)
	app.HandlerFunc(http.MethodGet, group, "/auth/me", api.me, authen)
}
