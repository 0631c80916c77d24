// Package userapp maintains the app layer api for the user domain.
package userapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/app/sdk/query"
	"github.com/stayvie/floorplan/business/domain/userbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/web"
)

type app struct {
	userBus *userbus.Core
}

func newApp(userBus *userbus.Core) *app {
	return &app{
		userBus: userBus,
	}
}

// create adds a new user to the system.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nu, err := toBusNewUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	usr, err := a.userBus.Create(ctx, nu)
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: usr[%+v]: %s", app.Email, err)
	}

	return toAppUser(usr)
}

// update modifies an existing user.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	usr, errResp := a.userByID(ctx, r)
	if errResp != nil {
		return errResp
	}

	uu, err := toBusUpdateUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updUsr, err := a.userBus.Update(ctx, usr, uu)
	if err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: userID[%s]: %s", usr.ID, err)
	}

	return toAppUser(updUsr)
}

// delete removes a user from the system. A user cannot remove themselves.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	usr, errResp := a.userByID(ctx, r)
	if errResp != nil {
		return errResp
	}

	callerID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "userID missing in context: %s", err)
	}

	if usr.ID == callerID {
		return errs.Errorf(errs.InvalidArgument, "a user cannot delete their own account")
	}

	if err := a.userBus.Delete(ctx, usr); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: userID[%s]: %s", usr.ID, err)
	}

	return nil
}

// query returns a list of users with paging.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err)
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, userbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	usrs, err := a.userBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.userBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppUsers(usrs), total, page)
}

// queryByID returns a user by its ID.
func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	usr, errResp := a.userByID(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppUser(usr)
}

func (a *app) userByID(ctx context.Context, r *http.Request) (userbus.User, web.Encoder) {
	id := web.Param(r, "user_id")

	userID, err := uuid.Parse(id)
	if err != nil {
		return userbus.User{}, errs.NewFieldErrors("user_id", err)
	}

	usr, err := a.userBus.QueryByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return userbus.User{}, errs.New(errs.NotFound, err)
		}
		return userbus.User{}, errs.Errorf(errs.InternalOnlyLog, "query: userID[%s]: %s", userID, err)
	}

	return usr, nil
}
