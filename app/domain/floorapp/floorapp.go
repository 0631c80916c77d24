// Package floorapp maintains the app layer api for the floor domain.
package floorapp

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/app/sdk/mid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/uploads"
)

// maxUploadSize bounds the multipart form parse for image uploads.
const maxUploadSize = 10 << 20

type app struct {
	outletBus     *outletbus.Core
	floorBus      *floorbus.Core
	roomBus       *roombus.Core
	uploads       *uploads.Store
	defaultOutlet slug.Slug
}

func newApp(outletBus *outletbus.Core, floorBus *floorbus.Core, roomBus *roombus.Core, up *uploads.Store, defaultOutlet slug.Slug) *app {
	return &app{
		outletBus:     outletBus,
		floorBus:      floorBus,
		roomBus:       roomBus,
		uploads:       up,
		defaultOutlet: defaultOutlet,
	}
}

// query returns the floors of an outlet ordered by level, each with its
// rooms embedded.
func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return errResp
	}

	flrs, err := a.floorBus.QueryByOutlet(ctx, otl.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query floors: outletID[%s]: %s", otl.ID, err)
	}

	appFlrs := make(Floors, len(flrs))
	for i, flr := range flrs {
		roms, err := a.roomBus.QueryByFloor(ctx, flr.ID)
		if err != nil {
			return errs.Errorf(errs.InternalOnlyLog, "query rooms: floorID[%s]: %s", flr.ID, err)
		}
		appFlrs[i] = toAppFloor(flr, roms)
	}

	return appFlrs
}

// queryByLevel returns a single floor with its rooms embedded.
func (a *app) queryByLevel(ctx context.Context, r *http.Request) web.Encoder {
	_, flr, errResp := a.resolveFloor(ctx, r)
	if errResp != nil {
		return errResp
	}

	roms, err := a.roomBus.QueryByFloor(ctx, flr.ID)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "query rooms: floorID[%s]: %s", flr.ID, err)
	}

	appFlr := toAppFloor(flr, roms)

	return &appFlr
}

// create adds a new floor to an outlet. The body is either JSON or a
// multipart form carrying an optional image file.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return errResp
	}

	app, file, errResp := decodeNewFloor(r)
	if errResp != nil {
		return errResp
	}

	nf, err := toBusNewFloor(app, otl.ID)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	// The image is written before the insert so a non-image body is
	// rejected without touching the database.
	if file != nil {
		imageURL, err := a.uploads.Save(file, fmt.Sprintf("%s-floor-%d", otl.Slug, nf.Level))
		if err != nil {
			if errors.Is(err, uploads.ErrNotImage) {
				return errs.New(errs.InvalidArgument, err)
			}
			return errs.Errorf(errs.InternalOnlyLog, "save image: %s", err)
		}
		nf.ImageURL = imageURL
	}

	flr, err := a.floorBus.Create(ctx, nf)
	if err != nil {
		if file != nil {
			a.uploads.Remove(nf.ImageURL)
		}
		if errors.Is(err, floorbus.ErrUniqueLevel) {
			return errs.New(errs.Aborted, floorbus.ErrUniqueLevel)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: outletID[%s] level[%d]: %s", otl.ID, nf.Level, err)
	}

	appFlr := toAppFloor(flr, nil)

	return &appFlr
}

// update modifies an existing floor.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateFloor
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	_, flr, errResp := a.resolveFloor(ctx, r)
	if errResp != nil {
		return errResp
	}

	uf, err := toBusUpdateFloor(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updFlr, err := a.floorBus.Update(ctx, flr, uf)
	if err != nil {
		if errors.Is(err, floorbus.ErrUniqueLevel) {
			return errs.New(errs.Aborted, floorbus.ErrUniqueLevel)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: floorID[%s]: %s", flr.ID, err)
	}

	appFlr := toAppFloor(updFlr, nil)

	return &appFlr
}

// delete removes a floor and its rooms. The locally hosted floor image is
// removed best effort once the row is gone.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	_, flr, errResp := a.resolveFloor(ctx, r)
	if errResp != nil {
		return errResp
	}

	tx, err := mid.GetTran(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "transaction missing in context: %s", err)
	}

	floorBus, err := a.floorBus.NewWithTx(tx)
	if err != nil {
		return errs.Errorf(errs.Internal, "newwithtx: %s", err)
	}

	if err := floorBus.Delete(ctx, flr); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: floorID[%s]: %s", flr.ID, err)
	}

	a.uploads.Remove(flr.ImageURL)

	return nil
}

// uploadImage replaces the background image of a floor.
func (a *app) uploadImage(ctx context.Context, r *http.Request) web.Encoder {
	otl, flr, errResp := a.resolveFloor(ctx, r)
	if errResp != nil {
		return errResp
	}

	imageURL, errResp := a.receiveImage(r, otl, flr)
	if errResp != nil {
		return errResp
	}

	oldImageURL := flr.ImageURL

	updFlr, err := a.floorBus.Update(ctx, flr, floorbus.UpdateFloor{ImageURL: &imageURL})
	if err != nil {
		if imageURL != oldImageURL {
			a.uploads.Remove(imageURL)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update image: floorID[%s]: %s", flr.ID, err)
	}

	if oldImageURL != "" && oldImageURL != imageURL {
		a.uploads.Remove(oldImageURL)
	}

	appFlr := toAppFloor(updFlr, nil)

	return &appFlr
}

// receiveImage takes the image from the request, either an uploaded file or
// an explicit imageUrl value, and returns the URL to store.
func (a *app) receiveImage(r *http.Request, otl outletbus.Outlet, flr floorbus.Floor) (string, web.Encoder) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", errs.New(errs.InvalidArgument, fmt.Errorf("parsing multipart form: %w", err))
	}

	if f, header, err := r.FormFile("image"); err == nil {
		f.Close()

		imageURL, err := a.uploads.Save(header, fmt.Sprintf("%s-floor-%d", otl.Slug, flr.Level))
		if err != nil {
			if errors.Is(err, uploads.ErrNotImage) {
				return "", errs.New(errs.InvalidArgument, err)
			}
			return "", errs.Errorf(errs.InternalOnlyLog, "save image: %s", err)
		}
		return imageURL, nil
	}

	if imageURL := r.FormValue("imageUrl"); imageURL != "" {
		return imageURL, nil
	}

	return "", errs.Errorf(errs.InvalidArgument, "an image file or imageUrl value is required")
}

// resolveOutlet resolves the outlet from the slug path parameter, falling
// back to the configured default outlet for the legacy routes.
func (a *app) resolveOutlet(ctx context.Context, r *http.Request) (outletbus.Outlet, web.Encoder) {
	slg := a.defaultOutlet

	if v := web.Param(r, "slug"); v != "" {
		var err error
		slg, err = slug.Parse(v)
		if err != nil {
			return outletbus.Outlet{}, errs.NewFieldErrors("slug", err)
		}
	}

	otl, err := a.outletBus.QueryBySlug(ctx, slg)
	if err != nil {
		if errors.Is(err, outletbus.ErrNotFound) {
			return outletbus.Outlet{}, errs.Errorf(errs.NotFound, "outlet %q not found", slg)
		}
		return outletbus.Outlet{}, errs.Errorf(errs.InternalOnlyLog, "query outlet: slug[%s]: %s", slg, err)
	}

	return otl, nil
}

// resolveFloor resolves the outlet and then the floor from the level path
// parameter.
func (a *app) resolveFloor(ctx context.Context, r *http.Request) (outletbus.Outlet, floorbus.Floor, web.Encoder) {
	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return outletbus.Outlet{}, floorbus.Floor{}, errResp
	}

	level, err := strconv.Atoi(web.Param(r, "level"))
	if err != nil {
		return outletbus.Outlet{}, floorbus.Floor{}, errs.NewFieldErrors("level", err)
	}

	flr, err := a.floorBus.QueryByLevel(ctx, otl.ID, level)
	if err != nil {
		if errors.Is(err, floorbus.ErrNotFound) {
			return outletbus.Outlet{}, floorbus.Floor{}, errs.Errorf(errs.NotFound, "floor %d not found in outlet %q", level, otl.Slug)
		}
		return outletbus.Outlet{}, floorbus.Floor{}, errs.Errorf(errs.InternalOnlyLog, "query floor: outletID[%s] level[%d]: %s", otl.ID, level, err)
	}

	return otl, flr, nil
}

// decodeNewFloor accepts either a JSON body or a multipart form with an
// optional image file.
func decodeNewFloor(r *http.Request) (NewFloor, *multipart.FileHeader, web.Encoder) {
	var app NewFloor

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return NewFloor{}, nil, errs.New(errs.InvalidArgument, fmt.Errorf("parsing multipart form: %w", err))
		}

		level, err := strconv.Atoi(r.FormValue("level"))
		if err != nil {
			return NewFloor{}, nil, errs.NewFieldErrors("level", err)
		}

		lvl := Level(level)

		app = NewFloor{
			Level:    &lvl,
			Name:     r.FormValue("name"),
			ViewBox:  r.FormValue("viewBox"),
			ImageURL: r.FormValue("imageUrl"),
		}

		if err := app.Validate(); err != nil {
			if v, ok := err.(*errs.Error); ok {
				return NewFloor{}, nil, v
			}
			return NewFloor{}, nil, errs.New(errs.InvalidArgument, err)
		}

		if f, header, err := r.FormFile("image"); err == nil {
			f.Close()
			return app, header, nil
		}

		return app, nil, nil
	}

	if err := web.Decode(r, &app); err != nil {
		return NewFloor{}, nil, errs.New(errs.InvalidArgument, err)
	}

	return app, nil, nil
}
