// Package outletbus provides business access to outlet domain.
package outletbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/otel"
)

var (
	ErrNotFound   = errors.New("outlet not found")
	ErrUniqueSlug = errors.New("slug is not unique")
)

// Storer defines the behavior required by the outletbus to interact with the database.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, otl Outlet) error
	Update(ctx context.Context, otl Outlet) error
	Delete(ctx context.Context, otl Outlet) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Outlet, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, outletID uuid.UUID) (Outlet, error)
	QueryBySlug(ctx context.Context, slg slug.Slug) (Outlet, error)
}

// Core manages the set of APIs for outlet access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for outlet api access.
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

// Create adds a new outlet to the system. When no slug is provided one is
// derived from the outlet name; a derived slug that is already taken gets a
// numeric suffix. An explicit slug that is taken is a conflict.
func (c *Core) Create(ctx context.Context, no NewOutlet) (Outlet, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.create")
	defer span.End()

	derived := no.Slug.String() == ""

	slg := no.Slug
	if derived {
		var err error
		slg, err = slug.Derive(no.Name.String())
		if err != nil {
			return Outlet{}, fmt.Errorf("derive slug: %w", err)
		}
	}

	now := time.Now()

	otl := Outlet{
		ID:          uuid.New(),
		Slug:        slg,
		Name:        no.Name,
		CompanyName: no.CompanyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := c.storer.Create(ctx, otl)

	for n := 2; derived && errors.Is(err, ErrUniqueSlug) && n <= 100; n++ {
		otl.Slug, _ = slug.Parse(fmt.Sprintf("%s-%d", slg, n))
		err = c.storer.Create(ctx, otl)
	}

	if err != nil {
		return Outlet{}, fmt.Errorf("create: %w", err)
	}

	return otl, nil
}

// Update modifies data about an outlet.
func (c *Core) Update(ctx context.Context, otl Outlet, uo UpdateOutlet) (Outlet, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.update")
	defer span.End()

	if uo.Slug != nil {
		otl.Slug = *uo.Slug
	}

	if uo.Name != nil {
		otl.Name = *uo.Name
	}

	if uo.CompanyName != nil {
		otl.CompanyName = *uo.CompanyName
	}

	otl.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, otl); err != nil {
		return Outlet{}, fmt.Errorf("update: %w", err)
	}

	return otl, nil
}

// Delete removes the specified outlet from the system. The schema cascades the
// removal to the outlet's floors and rooms.
func (c *Core) Delete(ctx context.Context, otl Outlet) error {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, otl); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing outlets.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Outlet, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.query")
	defer span.End()

	otls, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return otls, nil
}

// Count returns the total number of outlets.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the outlet by the specified ID.
func (c *Core) QueryByID(ctx context.Context, outletID uuid.UUID) (Outlet, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.querybyid")
	defer span.End()

	otl, err := c.storer.QueryByID(ctx, outletID)
	if err != nil {
		return Outlet{}, fmt.Errorf("query: outletID[%s]: %w", outletID, err)
	}

	return otl, nil
}

// QueryBySlug finds the outlet by the specified slug.
func (c *Core) QueryBySlug(ctx context.Context, slg slug.Slug) (Outlet, error) {
	ctx, span := otel.AddSpan(ctx, "business.outletbus.querybyslug")
	defer span.End()

	otl, err := c.storer.QueryBySlug(ctx, slg)
	if err != nil {
		return Outlet{}, fmt.Errorf("query: slug[%s]: %w", slg, err)
	}

	return otl, nil
}
