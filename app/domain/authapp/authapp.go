// Package authapp maintains the app layer api for the auth domain.
package authapp

import (
	"context"
	"net/http"
	"net/mail"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/sdk/web"
)

type app struct {
	auth *auth.Auth
}

func newApp(ath *auth.Auth) *app {
	return &app{
		auth: ath,
	}
}

// login validates the provided credentials and returns a signed token
// together with the authenticated user.
func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var app Login
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		return errs.NewFieldErrors("email", err)
	}

	usr, err := a.auth.Login(ctx, *addr, app.Password)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	token, err := a.auth.GenerateToken(usr)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "generate token: userID[%s]: %s", usr.ID, err)
	}

	return Token{
		Token: token,
		User:  toAppUser(usr),
	}
}

// me returns the authenticated user.
func (a *app) me(ctx context.Context, _ *http.Request) web.Encoder {
	usr, err := mid.GetUser(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "user missing in context: %s", err)
	}

	return toAppUser(usr)
}
