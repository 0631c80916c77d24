package floordb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/types/name"
)

type floorDB struct {
	ID        uuid.UUID `db:"floor_id"`
	OutletID  uuid.UUID `db:"outlet_id"`
	Level     int       `db:"level"`
	Name      string    `db:"name"`
	ImageURL  string    `db:"image_url"`
	ViewBox   string    `db:"view_box"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDBFloor(bus floorbus.Floor) floorDB {
	return floorDB{
		ID:        bus.ID,
		OutletID:  bus.OutletID,
		Level:     bus.Level,
		Name:      bus.Name.String(),
		ImageURL:  bus.ImageURL,
		ViewBox:   bus.ViewBox,
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusFloor(db floorDB) (floorbus.Floor, error) {
	nme, err := name.Parse(db.Name)
	if err != nil {
		return floorbus.Floor{}, fmt.Errorf("parse name: %w", err)
	}

	bus := floorbus.Floor{
		ID:        db.ID,
		OutletID:  db.OutletID,
		Level:     db.Level,
		Name:      nme,
		ImageURL:  db.ImageURL,
		ViewBox:   db.ViewBox,
		CreatedAt: db.CreatedAt.In(time.Local),
		UpdatedAt: db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusFloors(dbs []floorDB) ([]floorbus.Floor, error) {
	bus := make([]floorbus.Floor, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusFloor(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
