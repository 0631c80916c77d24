package outletdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
)

type outletDB struct {
	ID          uuid.UUID `db:"outlet_id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	CompanyName string    `db:"company_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDBOutlet(bus outletbus.Outlet) outletDB {
	return outletDB{
		ID:          bus.ID,
		Slug:        bus.Slug.String(),
		Name:        bus.Name.String(),
		CompanyName: bus.CompanyName.String(),
		CreatedAt:   bus.CreatedAt.UTC(),
		UpdatedAt:   bus.UpdatedAt.UTC(),
	}
}

func toBusOutlet(db outletDB) (outletbus.Outlet, error) {
	slg, err := slug.Parse(db.Slug)
	if err != nil {
		return outletbus.Outlet{}, fmt.Errorf("parse slug: %w", err)
	}

	nme, err := name.Parse(db.Name)
	if err != nil {
		return outletbus.Outlet{}, fmt.Errorf("parse name: %w", err)
	}

	company, err := name.Parse(db.CompanyName)
	if err != nil {
		return outletbus.Outlet{}, fmt.Errorf("parse company name: %w", err)
	}

	bus := outletbus.Outlet{
		ID:          db.ID,
		Slug:        slg,
		Name:        nme,
		CompanyName: company,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusOutlets(dbs []outletDB) ([]outletbus.Outlet, error) {
	bus := make([]outletbus.Outlet, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusOutlet(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
