// Package outletapp maintains the app layer api for the outlet domain.
package outletapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/app/sdk/query"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/uploads"
)

type app struct {
	outletBus *outletbus.Core
	floorBus  *floorbus.Core
	uploads   *uploads.Store
}

func newApp(outletBus *outletbus.Core, floorBus *floorbus.Core, up *uploads.Store) *app {
	return &app{
		outletBus: outletBus,
		floorBus:  floorBus,
		uploads:   up,
	}
}

// create adds a new outlet to the system.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewOutlet
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	no, err := toBusNewOutlet(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	otl, err := a.outletBus.Create(ctx, no)
	if err != nil {
		if errors.Is(err, outletbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, outletbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: outlet[%+v]: %s", app.Name, err)
	}

	return toAppOutlet(otl)
}

// update modifies an existing outlet.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateOutlet
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	otl, errResp := a.outletBySlug(ctx, r)
	if errResp != nil {
		return errResp
	}

	uo, err := toBusUpdateOutlet(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updOtl, err := a.outletBus.Update(ctx, otl, uo)
	if err != nil {
		if errors.Is(err, outletbus.ErrUniqueSlug) {
			return errs.New(errs.Aborted, outletbus.ErrUniqueSlug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: outletID[%s]: %s", otl.ID, err)
	}

	return toAppOutlet(updOtl)
}

// delete removes an outlet with everything it contains. The database cascades
// the floors and rooms, the handler cleans up locally hosted floor images.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	otl, errResp := a.outletBySlug(ctx, r)
	if errResp != nil {
		return errResp
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	outletBus, err := a.outletBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	flrs, err := a.floorBus.QueryByOutlet(ctx, otl.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query floors: outletID[%s]: %s", otl.ID, err)
	}

	if err := outletBus.Delete(ctx, otl); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: outletID[%s]: %s", otl.ID, err)
	}

	for _, flr := range flrs {
		a.uploads.Remove(flr.ImageURL)
	}

	return nil
}

// query returns a list of outlets with paging.
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, outletbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err)
	}

	otls, err := a.outletBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.outletBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppOutlets(otls), total, page)
}

// queryBySlug returns an outlet by its slug.
func (a *app) queryBySlug(ctx context.Context, r *http.Request) web.Encoder {
	otl, errResp := a.outletBySlug(ctx, r)
	if errResp != nil {
		return errResp
	}

	return toAppOutlet(otl)
}

func (a *app) outletBySlug(ctx context.Context, r *http.Request) (outletbus.Outlet, web.Encoder) {
	slg, err := slug.Parse(web.Param(r, "slug"))
	if err != nil {
		return outletbus.Outlet{}, errs.NewFieldErrors("slug", err)
	}

	otl, err := a.outletBus.QueryBySlug(ctx, slg)
	if err != nil {
		if errors.Is(err, outletbus.ErrNotFound) {
			return outletbus.Outlet{}, errs.Errorf(errs.NotFound, "outlet %q not found", slg)
		}
		return outletbus.Outlet{}, errs.Errorf(errs.InternalOnlyLog, "query: slug[%s]: %s", slg, err)
	}

	return otl, nil
}
