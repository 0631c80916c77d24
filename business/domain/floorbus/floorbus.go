// Package floorbus provides business access to floor domain.
package floorbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/otel"
)

var (
	ErrNotFound    = errors.New("floor not found")
	ErrUniqueLevel = errors.New("level is not unique within the outlet")
)

// Storer defines the behavior required by the floorbus to interact with the database.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, flr Floor) error
	Update(ctx context.Context, flr Floor) error
	Delete(ctx context.Context, flr Floor) error
	QueryByOutlet(ctx context.Context, outletID uuid.UUID) ([]Floor, error)
	QueryByID(ctx context.Context, floorID uuid.UUID) (Floor, error)
	QueryByLevel(ctx context.Context, outletID uuid.UUID, level int) (Floor, error)
}

// Core manages the set of APIs for floor access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for floor api access.
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

// Create adds a new floor to the specified outlet.
func (c *Core) Create(ctx context.Context, nf NewFloor) (Floor, error) {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.create")
	defer span.End()

	now := time.Now()

	flr := Floor{
		ID:        uuid.New(),
		OutletID:  nf.OutletID,
		Level:     nf.Level,
		Name:      nf.Name,
		ImageURL:  nf.ImageURL,
		ViewBox:   nf.ViewBox,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, flr); err != nil {
		return Floor{}, fmt.Errorf("create: %w", err)
	}

	return flr, nil
}

// Update modifies data about a floor.
func (c *Core) Update(ctx context.Context, flr Floor, uf UpdateFloor) (Floor, error) {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.update")
	defer span.End()

	if uf.Level != nil {
		flr.Level = *uf.Level
	}

	if uf.Name != nil {
		flr.Name = *uf.Name
	}

	if uf.ImageURL != nil {
		flr.ImageURL = *uf.ImageURL
	}

	if uf.ViewBox != nil {
		flr.ViewBox = *uf.ViewBox
	}

	flr.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, flr); err != nil {
		return Floor{}, fmt.Errorf("update: %w", err)
	}

	return flr, nil
}

// Delete removes the specified floor. The schema cascades the removal to the
// floor's rooms.
func (c *Core) Delete(ctx context.Context, flr Floor) error {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, flr); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// QueryByOutlet retrieves the floors of the specified outlet ordered by level.
func (c *Core) QueryByOutlet(ctx context.Context, outletID uuid.UUID) ([]Floor, error) {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.querybyoutlet")
	defer span.End()

	flrs, err := c.storer.QueryByOutlet(ctx, outletID)
	if err != nil {
		return nil, fmt.Errorf("query: outletID[%s]: %w", outletID, err)
	}

	return flrs, nil
}

// QueryByID finds the floor by the specified ID.
func (c *Core) QueryByID(ctx context.Context, floorID uuid.UUID) (Floor, error) {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.querybyid")
	defer span.End()

	flr, err := c.storer.QueryByID(ctx, floorID)
	if err != nil {
		return Floor{}, fmt.Errorf("query: floorID[%s]: %w", floorID, err)
	}

	return flr, nil
}

// QueryByLevel finds the floor of an outlet by its level number.
func (c *Core) QueryByLevel(ctx context.Context, outletID uuid.UUID, level int) (Floor, error) {
	ctx, span := otel.AddSpan(ctx, "business.floorbus.querybylevel")
	defer span.End()

	flr, err := c.storer.QueryByLevel(ctx, outletID, level)
	if err != nil {
		return Floor{}, fmt.Errorf("query: outletID[%s] level[%d]: %w", outletID, level, err)
	}

	return flr, nil
}
