// Package floordb contains floor related CRUD functionality.
package floordb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/foundation/logger"
)

// Store manages the set of APIs for floor database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (floorbus.Storer, error) {
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

// Create inserts a new floor into the database.
func (s *Store) Create(ctx context.Context, flr floorbus.Floor) error {
	const q = `
	INSERT INTO floors
		(floor_id, outlet_id, level, name, image_url, view_box, created_at, updated_at)
	VALUES
		(:floor_id, :outlet_id, :level, :name, :image_url, :view_box, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBFloor(flr)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", floorbus.ErrUniqueLevel)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces a floor record in the database.
func (s *Store) Update(ctx context.Context, flr floorbus.Floor) error {
	const q = `
	UPDATE
		floors
	SET
		level = :level,
		name = :name,
		image_url = :image_url,
		view_box = :view_box,
		updated_at = :updated_at
	WHERE
		floor_id = :floor_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBFloor(flr)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return floorbus.ErrUniqueLevel
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes a floor from the database.
func (s *Store) Delete(ctx context.Context, flr floorbus.Floor) error {
	const q = `
	DELETE FROM
		floors
	WHERE
		floor_id = :floor_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBFloor(flr)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// QueryByOutlet retrieves the floors of an outlet ordered by level.
func (s *Store) QueryByOutlet(ctx context.Context, outletID uuid.UUID) ([]floorbus.Floor, error) {
	data := struct {
		OutletID string `db:"outlet_id"`
	}{
		OutletID: outletID.String(),
	}

	const q = `
	SELECT
		floor_id, outlet_id, level, name, image_url, view_box, created_at, updated_at
	FROM
		floors
	WHERE
		outlet_id = :outlet_id
	ORDER BY
		level ASC`

	var dbFlrs []floorDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, q, data, &dbFlrs); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusFloors(dbFlrs)
}

// QueryByID gets the specified floor from the database.
func (s *Store) QueryByID(ctx context.Context, floorID uuid.UUID) (floorbus.Floor, error) {
	data := struct {
		ID string `db:"floor_id"`
	}{
		ID: floorID.String(),
	}

	const q = `
	SELECT
		floor_id, outlet_id, level, name, image_url, view_box, created_at, updated_at
	FROM
		floors
	WHERE
		floor_id = :floor_id`

	var dbFlr floorDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbFlr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return floorbus.Floor{}, fmt.Errorf("db: %w", floorbus.ErrNotFound)
		}
		return floorbus.Floor{}, fmt.Errorf("db: %w", err)
	}

	return toBusFloor(dbFlr)
}

// QueryByLevel gets the floor of an outlet with the specified level.
func (s *Store) QueryByLevel(ctx context.Context, outletID uuid.UUID, level int) (floorbus.Floor, error) {
	data := struct {
		OutletID string `db:"outlet_id"`
		Level    int    `db:"level"`
	}{
		OutletID: outletID.String(),
		Level:    level,
	}

	const q = `
	SELECT
		floor_id, outlet_id, level, name, image_url, view_box, created_at, updated_at
	FROM
		floors
	WHERE
		outlet_id = :outlet_id AND level = :level`

	var dbFlr floorDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbFlr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return floorbus.Floor{}, fmt.Errorf("db: %w", floorbus.ErrNotFound)
		}
		return floorbus.Floor{}, fmt.Errorf("db: %w", err)
	}

	return toBusFloor(dbFlr)
}
