// Package outletdb contains outlet related CRUD functionality.
package outletdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/sdk/order"
	"github.com/stayvie/floorplan/business/sdk/page"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stayvie/floorplan/foundation/logger"
)

// Store manages the set of APIs for outlet database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (outletbus.Storer, error) {
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

// Create inserts a new outlet into the database.
func (s *Store) Create(ctx context.Context, otl outletbus.Outlet) error {
	const q = `
	INSERT INTO outlets
		(outlet_id, slug, name, company_name, created_at, updated_at)
	VALUES
		(:outlet_id, :slug, :name, :company_name, :created_at, :updated_at)`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOutlet(otl)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return fmt.Errorf("namedexeccontext: %w", outletbus.ErrUniqueSlug)
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Update replaces an outlet record in the database.
func (s *Store) Update(ctx context.Context, otl outletbus.Outlet) error {
	const q = `
	UPDATE
		outlets
	SET
		slug = :slug,
		name = :name,
		company_name = :company_name,
		updated_at = :updated_at
	WHERE
		outlet_id = :outlet_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOutlet(otl)); err != nil {
		var dupErr sqldb.ErrDBDuplicatedEntry
		if errors.As(err, &dupErr) {
			return outletbus.ErrUniqueSlug
		}
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Delete removes an outlet from the database.
func (s *Store) Delete(ctx context.Context, otl outletbus.Outlet) error {
	const q = `
	DELETE FROM
		outlets
	WHERE
		outlet_id = :outlet_id`

	if err := sqldb.NamedExecContext(ctx, s.log, s.db, q, toDBOutlet(otl)); err != nil {
		return fmt.Errorf("namedexeccontext: %w", err)
	}

	return nil
}

// Query retrieves a list of existing outlets from the database.
func (s *Store) Query(ctx context.Context, filter outletbus.QueryFilter, orderBy order.By, page page.Page) ([]outletbus.Outlet, error) {
	data := map[string]any{
		"offset":        (page.Number() - 1) * page.RowsPerPage(),
		"rows_per_page": page.RowsPerPage(),
	}

	const q = `
	SELECT
		outlet_id, slug, name, company_name, created_at, updated_at
	FROM
		outlets`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	orderByClause, err := orderByClause(orderBy)
	if err != nil {
		return nil, err
	}

	buf.WriteString(orderByClause)
	buf.WriteString(" OFFSET :offset ROWS FETCH NEXT :rows_per_page ROWS ONLY")

	var dbOtls []outletDB
	if err := sqldb.NamedQuerySlice(ctx, s.log, s.db, buf.String(), data, &dbOtls); err != nil {
		return nil, fmt.Errorf("namedqueryslice: %w", err)
	}

	return toBusOutlets(dbOtls)
}

// Count returns the total number of outlets in the DB.
func (s *Store) Count(ctx context.Context, filter outletbus.QueryFilter) (int, error) {
	data := map[string]any{}

	const q = `
	SELECT
		count(1)
	FROM
		outlets`

	buf := bytes.NewBufferString(q)
	applyFilter(filter, data, buf)

	var count struct {
		Count int `db:"count"`
	}
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, buf.String(), data, &count); err != nil {
		return 0, fmt.Errorf("db: %w", err)
	}

	return count.Count, nil
}

// QueryByID gets the specified outlet from the database.
func (s *Store) QueryByID(ctx context.Context, outletID uuid.UUID) (outletbus.Outlet, error) {
	data := struct {
		ID string `db:"outlet_id"`
	}{
		ID: outletID.String(),
	}

	const q = `
	SELECT
		outlet_id, slug, name, company_name, created_at, updated_at
	FROM
		outlets
	WHERE
		outlet_id = :outlet_id`

	var dbOtl outletDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbOtl); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return outletbus.Outlet{}, fmt.Errorf("db: %w", outletbus.ErrNotFound)
		}
		return outletbus.Outlet{}, fmt.Errorf("db: %w", err)
	}

	return toBusOutlet(dbOtl)
}

// QueryBySlug gets the specified outlet from the database by slug.
func (s *Store) QueryBySlug(ctx context.Context, slg slug.Slug) (outletbus.Outlet, error) {
	data := struct {
		Slug string `db:"slug"`
	}{
		Slug: slg.String(),
	}

	const q = `
	SELECT
		outlet_id, slug, name, company_name, created_at, updated_at
	FROM
		outlets
	WHERE
		slug = :slug`

	var dbOtl outletDB
	if err := sqldb.NamedQueryStruct(ctx, s.log, s.db, q, data, &dbOtl); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return outletbus.Outlet{}, fmt.Errorf("db: %w", outletbus.ErrNotFound)
		}
		return outletbus.Outlet{}, fmt.Errorf("db: %w", err)
	}

	return toBusOutlet(dbOtl)
}
