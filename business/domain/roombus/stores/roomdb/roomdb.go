// Package roomdb contains room related CRUD functionality.
package roomdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/sdk/sqldb/dbarray"
	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stayvie/floorplan/foundation/logger"
)

// Store manages the set of APIs for room database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (roombus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new room into the database.
func (s *Store) Create(ctx context.Context, rom roombus.Room) error {
	const q = `
	INSERT INTO rooms
		(room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at)
	VALUES
		(:room_id, :outlet_id, :floor_id, :room_code, :x, :y, :width, :height, :status, :tenant_name, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRoom(rom)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", roombus.ErrUniqueCode)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a room record in the database.
func (s *Store) Update(ctx context.Context, rom roombus.Room) error {
	const q = `
	UPDATE
		rooms
	SET
		room_code = :room_code,
		x = :x,
		y = :y,
		width = :width,
		height = :height,
		status = :status,
		tenant_name = :tenant_name,
		updated_at = :updated_at
	WHERE
		room_id = :room_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRoom(rom)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return roombus.ErrUniqueCode
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a room from the database.
func (s *Store) Delete(ctx context.Context, rom roombus.Room) error {
	const q = `
	DELETE FROM
		rooms
	WHERE
		room_id = :room_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBRoom(rom)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByFloor retrieves the rooms of a floor ordered by room code.
func (s *Store) QueryByFloor(ctx context.Context, floorID uuid.UUID) ([]roombus.Room, error) {
	data := struct {
		FloorID string `db:"floor_id"`
	}{
		FloorID: floorID.String(),
	}

	const q = `
	SELECT
		room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at
	FROM
		rooms
	WHERE
		floor_id = :floor_id
	ORDER BY
		room_code ASC`

	var dbRoms []roomDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbRoms); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusRooms(dbRoms)
}

// QueryByID gets the specified room from the database.
func (s *Store) QueryByID(ctx context.Context, roomID uuid.UUID) (roombus.Room, error) {
	data := struct {
		ID string `db:"room_id"`
	}{
		ID: roomID.String(),
	}

	const q = `
	SELECT
		room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at
	FROM
		rooms
	WHERE
		room_id = :room_id`

	var dbRom roomDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbRom); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return roombus.Room{}, fmt.Errorf("db: %w", roombus.ErrNotFound)
		}
		return roombus.Room{}, fmt.Errorf("db: %w", err)
	}

	return toBusRoom(dbRom)
}

// QueryByCode gets the room of an outlet with the specified room code.
func (s *Store) QueryByCode(ctx context.Context, outletID uuid.UUID, code string) (roombus.Room, error) {
	data := struct {
		OutletID string `db:"outlet_id"`
		Code     string `db:"room_code"`
	}{
		OutletID: outletID.String(),
		Code:     code,
	}

	const q = `
	SELECT
		room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at
	FROM
		rooms
	WHERE
		outlet_id = :outlet_id AND room_code = :room_code`

	var dbRom roomDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbRom); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return roombus.Room{}, fmt.Errorf("db: %w", roombus.ErrNotFound)
		}
		return roombus.Room{}, fmt.Errorf("db: %w", err)
	}

	return toBusRoom(dbRom)
}

// UpdateStatusBulk sets the status of every room in the outlet whose room
// code is in the codes list and returns the updated rows.
func (s *Store) UpdateStatusBulk(ctx context.Context, outletID uuid.UUID, codes []string, status roomstatus.Status, now time.Time) ([]roombus.Room, error) {
	data := struct {
		OutletID  string         `db:"outlet_id"`
		Codes     dbarray.String `db:"room_codes"`
		Status    string         `db:"status"`
		UpdatedAt time.Time      `db:"updated_at"`
	}{
		OutletID:  outletID.String(),
		Codes:     codes,
		Status:    status.String(),
		UpdatedAt: now.UTC(),
	}

	const q = `
	UPDATE
		rooms
	SET
		status = :status,
		updated_at = :updated_at
	WHERE
		outlet_id = :outlet_id AND room_code = ANY(CAST(:room_codes AS text[]))
	RETURNING
		room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at`

	var dbRoms []roomDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbRoms); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusRooms(dbRoms)
}
