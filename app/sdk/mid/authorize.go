package mid

import (
	"context"
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/auth"
	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/role"
)

// Authorize validates that the authenticated user has one of the specified
// roles.
func Authorize(a *auth.Auth, allowedRoles ...role.Role) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			claims := GetClaims(ctx)

			if err := a.Authorize(ctx, claims, allowedRoles...); err != nil {
				return errs.New(errs.PermissionDenied, err)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}
