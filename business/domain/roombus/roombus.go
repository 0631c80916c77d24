// Package roombus provides business access to room domain.
package roombus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/otel"
)

var (
	ErrNotFound   = errors.New("room not found")
	ErrUniqueCode = errors.New("room code is not unique within the outlet")
)

// Storer defines the behavior required by the roombus to interact with the database.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, rom Room) error
	Update(ctx context.Context, rom Room) error
	Delete(ctx context.Context, rom Room) error
	QueryByFloor(ctx context.Context, floorID uuid.UUID) ([]Room, error)
	QueryByID(ctx context.Context, roomID uuid.UUID) (Room, error)
	QueryByCode(ctx context.Context, outletID uuid.UUID, code string) (Room, error)
	UpdateStatusBulk(ctx context.Context, outletID uuid.UUID, codes []string, status roomstatus.Status, now time.Time) ([]Room, error)
}

// Core manages the set of APIs for room access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for room api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		storer: storer,
		log:    log,
	}
}

// NewWithTx constructs a new Core value replacing the Storer
// value with a Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newWithTx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Create adds a new room to the specified floor.
func (c *Core) Create(ctx context.Context, nr NewRoom) (Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.create")
	defer span.End()

	now := time.Now()

	rom := Room{
		ID:         uuid.New(),
		OutletID:   nr.OutletID,
		FloorID:    nr.FloorID,
		Code:       nr.Code,
		X:          nr.X,
		Y:          nr.Y,
		Width:      nr.Width,
		Height:     nr.Height,
		Status:     nr.Status,
		TenantName: nr.TenantName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storer.Create(ctx, rom); err != nil {
		return Room{}, fmt.Errorf("create: %w", err)
	}

	return rom, nil
}

// Update modifies data about a room.
func (c *Core) Update(ctx context.Context, rom Room, ur UpdateRoom) (Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.update")
	defer span.End()

	if ur.Code != nil {
		rom.Code = *ur.Code
	}

	if ur.X != nil {
		rom.X = *ur.X
	}

	if ur.Y != nil {
		rom.Y = *ur.Y
	}

	if ur.Width != nil {
		rom.Width = *ur.Width
	}

	if ur.Height != nil {
		rom.Height = *ur.Height
	}

	if ur.Status != nil {
		rom.Status = *ur.Status
	}

	if ur.TenantName != nil {
		rom.TenantName = *ur.TenantName
	}

	rom.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, rom); err != nil {
		return Room{}, fmt.Errorf("update: %w", err)
	}

	return rom, nil
}

// Delete removes the specified room from the system.
func (c *Core) Delete(ctx context.Context, rom Room) error {
	ctx, span := otel.AddSpan(ctx, "business.roombus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, rom); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// QueryByFloor retrieves the rooms that belong to the specified floor.
func (c *Core) QueryByFloor(ctx context.Context, floorID uuid.UUID) ([]Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.querybyfloor")
	defer span.End()

	roms, err := c.storer.QueryByFloor(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("query: floorID[%s]: %w", floorID, err)
	}

	return roms, nil
}

// QueryByID finds the room by the specified ID.
func (c *Core) QueryByID(ctx context.Context, roomID uuid.UUID) (Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.querybyid")
	defer span.End()

	rom, err := c.storer.QueryByID(ctx, roomID)
	if err != nil {
		return Room{}, fmt.Errorf("query: roomID[%s]: %w", roomID, err)
	}

	return rom, nil
}

// QueryByCode finds the room of an outlet by its room code.
func (c *Core) QueryByCode(ctx context.Context, outletID uuid.UUID, code string) (Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.querybycode")
	defer span.End()

	rom, err := c.storer.QueryByCode(ctx, outletID, code)
	if err != nil {
		return Room{}, fmt.Errorf("query: outletID[%s] code[%s]: %w", outletID, code, err)
	}

	return rom, nil
}

// UpdateStatusBulk sets the status of every room in the outlet whose code is
// in the codes list and returns the rooms that were updated. Codes that match
// no room are simply not present in the result.
func (c *Core) UpdateStatusBulk(ctx context.Context, outletID uuid.UUID, codes []string, status roomstatus.Status) ([]Room, error) {
	ctx, span := otel.AddSpan(ctx, "business.roombus.updatestatusbulk")
	defer span.End()

	roms, err := c.storer.UpdateStatusBulk(ctx, outletID, codes, status, time.Now())
	if err != nil {
		return nil, fmt.Errorf("updatestatusbulk: outletID[%s]: %w", outletID, err)
	}

	return roms, nil
}
