// Package roomapp maintains the app layer api for the room domain.
package roomapp

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stayvie/floorplan/business/types/slug"
)

type app struct {
	outletBus     *outletbus.Core
	floorBus      *floorbus.Core
	roomBus       *roombus.Core
	defaultOutlet slug.Slug
}

func newApp(outletBus *outletbus.Core, floorBus *floorbus.Core, roomBus *roombus.Core, defaultOutlet slug.Slug) *app {
	return &app{
		outletBus:     outletBus,
		floorBus:      floorBus,
		roomBus:       roomBus,
		defaultOutlet: defaultOutlet,
	}
}

// create adds a new room to a floor.
func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewRoom
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return errResp
	}

	level, err := strconv.Atoi(web.Param(r, "level"))
	if err != nil {
		return errs.NewFieldErrors("level", err)
	}

	flr, err := a.floorBus.QueryByLevel(ctx, otl.ID, level)
	if err != nil {
		if errors.Is(err, floorbus.ErrNotFound) {
			return errs.Errorf(errs.NotFound, "floor %d not found in outlet %q", level, otl.Slug)
		}
		return errs.Errorf(errs.InternalOnlyLog, "query floor: outletID[%s] level[%d]: %s", otl.ID, level, err)
	}

	nr, err := toBusNewRoom(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}
	nr.OutletID = otl.ID
	nr.FloorID = flr.ID

	rom, err := a.roomBus.Create(ctx, nr)
	if err != nil {
		if errors.Is(err, roombus.ErrUniqueCode) {
			return errs.New(errs.Aborted, roombus.ErrUniqueCode)
		}
		return errs.Errorf(errs.InternalOnlyLog, "create: floorID[%s] code[%s]: %s", flr.ID, nr.Code, err)
	}

	return ToAppRoom(rom)
}

// update modifies an existing room.
func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateRoom
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	rom, errResp := a.roomByCode(ctx, r)
	if errResp != nil {
		return errResp
	}

	ur, err := toBusUpdateRoom(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	updRom, err := a.roomBus.Update(ctx, rom, ur)
	if err != nil {
		if errors.Is(err, roombus.ErrUniqueCode) {
			return errs.New(errs.Aborted, roombus.ErrUniqueCode)
		}
		return errs.Errorf(errs.InternalOnlyLog, "update: roomID[%s]: %s", rom.ID, err)
	}

	return ToAppRoom(updRom)
}

// delete removes a room from the system.
func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	rom, errResp := a.roomByCode(ctx, r)
	if errResp != nil {
		return errResp
	}

	if err := a.roomBus.Delete(ctx, rom); err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "delete: roomID[%s]: %s", rom.ID, err)
	}

	return nil
}

// bulkStatus sets the status of every room in the list of room codes with a
// single statement and returns the rooms that were updated.
func (a *app) bulkStatus(ctx context.Context, r *http.Request) web.Encoder {
	var app BulkStatus
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return errResp
	}

	status, err := roomstatus.Parse(app.Status)
	if err != nil {
		return errs.NewFieldErrors("status", err)
	}

	roms, err := a.roomBus.UpdateStatusBulk(ctx, otl.ID, app.IDs, status)
	if err != nil {
		return errs.Errorf(errs.InternalOnlyLog, "bulk status: outletID[%s]: %s", otl.ID, err)
	}

	if len(roms) == 0 {
		return errs.Errorf(errs.NotFound, "no rooms matched the provided ids")
	}

	return Rooms(ToAppRooms(roms))
}

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

func (a *app) roomByCode(ctx context.Context, r *http.Request) (roombus.Room, web.Encoder) {
	otl, errResp := a.resolveOutlet(ctx, r)
	if errResp != nil {
		return roombus.Room{}, errResp
	}

	code := web.Param(r, "code")
	if code == "" {
		return roombus.Room{}, errs.Errorf(errs.InvalidArgument, "room code is required")
	}

	rom, err := a.roomBus.QueryByCode(ctx, otl.ID, code)
	if err != nil {
		if errors.Is(err, roombus.ErrNotFound) {
			return roombus.Room{}, errs.Errorf(errs.NotFound, "room %q not found in outlet %q", code, otl.Slug)
		}
		return roombus.Room{}, errs.Errorf(errs.InternalOnlyLog, "query room: outletID[%s] code[%s]: %s", otl.ID, code, err)
	}

	return rom, nil
}
