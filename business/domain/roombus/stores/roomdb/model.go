package roomdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/roomstatus"
)

type roomDB struct {
	ID         uuid.UUID      `db:"room_id"`
	OutletID   uuid.UUID      `db:"outlet_id"`
	FloorID    uuid.UUID      `db:"floor_id"`
	Code       string         `db:"room_code"`
	X          float64        `db:"x"`
	Y          float64        `db:"y"`
	Width      float64        `db:"width"`
	Height     float64        `db:"height"`
	Status     string         `db:"status"`
	TenantName sql.NullString `db:"tenant_name"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func toDBRoom(bus roombus.Room) roomDB {
	return roomDB{
		ID:       bus.ID,
		OutletID: bus.OutletID,
		FloorID:  bus.FloorID,
		Code:     bus.Code,
		X:        bus.X,
		Y:        bus.Y,
		Width:    bus.Width,
		Height:   bus.Height,
		Status:   bus.Status.String(),
		TenantName: sql.NullString{
			String: bus.TenantName.String(),
			Valid:  bus.TenantName.Valid(),
		},
		CreatedAt: bus.CreatedAt.UTC(),
		UpdatedAt: bus.UpdatedAt.UTC(),
	}
}

func toBusRoom(db roomDB) (roombus.Room, error) {
	status, err := roomstatus.Parse(db.Status)
	if err != nil {
		return roombus.Room{}, fmt.Errorf("parse status: %w", err)
	}

	var tenant name.Null
	if db.TenantName.Valid {
		tenant, err = name.ParseNull(db.TenantName.String)
		if err != nil {
			return roombus.Room{}, fmt.Errorf("parse tenant name: %w", err)
		}
	}

	bus := roombus.Room{
		ID:         db.ID,
		OutletID:   db.OutletID,
		FloorID:    db.FloorID,
		Code:       db.Code,
		X:          db.X,
		Y:          db.Y,
		Width:      db.Width,
		Height:     db.Height,
		Status:     status,
		TenantName: tenant,
		CreatedAt:  db.CreatedAt.In(time.Local),
		UpdatedAt:  db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusRooms(dbs []roomDB) ([]roombus.Room, error) {
	bus := make([]roombus.Room, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusRoom(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
