package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayvie/floorplan/business/sdk/sqldb"
	"github.com/stayvie/floorplan/foundation/logger"
	"golang.org/x/crypto/bcrypt"
)

// SeedConfig carries the identity of the default dataset inserted on startup.
type SeedConfig struct {
	OutletSlug    string
	OutletName    string
	CompanyName   string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Seed inserts the default outlet, its floors and rooms, and an initial admin
// user. Running it repeatedly converges on the same dataset.
func Seed(ctx context.Context, log *logger.Logger, db *sqlx.DB, cfg SeedConfig) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	outletID, err := seedOutlet(ctx, log, tx, cfg)
	if err != nil {
		return fmt.Errorf("seed outlet: %w", err)
	}

	for _, fl := range defaultFloors {
		if err = seedFloorRooms(ctx, log, tx, outletID, fl); err != nil {
			return fmt.Errorf("seed floor %d: %w", fl.Level, err)
		}
	}

	if err = seedAdmin(ctx, log, tx, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func seedOutlet(ctx context.Context, log *logger.Logger, tx *sqlx.Tx, cfg SeedConfig) (uuid.UUID, error) {
	data := struct {
		ID          uuid.UUID `db:"outlet_id"`
		Slug        string    `db:"slug"`
		Name        string    `db:"name"`
		CompanyName string    `db:"company_name"`
		Now         time.Time `db:"now"`
	}{
		ID:          uuid.New(),
		Slug:        cfg.OutletSlug,
		Name:        cfg.OutletName,
		CompanyName: cfg.CompanyName,
		Now:         time.Now().UTC(),
	}

	const q = `
	INSERT INTO outlets
		(outlet_id, slug, name, company_name, created_at, updated_at)
	VALUES
		(:outlet_id, :slug, :name, :company_name, :now, :now)
	ON CONFLICT (slug) DO NOTHING`

	if err := sqldb.NamedExecContext(ctx, log, tx, q, data); err != nil {
		return uuid.Nil, err
	}

	var row struct {
		ID uuid.UUID `db:"outlet_id"`
	}
	if err := sqldb.NamedQueryStruct(ctx, log, tx, `SELECT outlet_id FROM outlets WHERE slug = :slug`, data, &row); err != nil {
		return uuid.Nil, err
	}

	return row.ID, nil
}

func seedFloorRooms(ctx context.Context, log *logger.Logger, tx *sqlx.Tx, outletID uuid.UUID, fl seedFloor) error {
	floorData := struct {
		ID       uuid.UUID `db:"floor_id"`
		OutletID uuid.UUID `db:"outlet_id"`
		Level    int       `db:"level"`
		Name     string    `db:"name"`
		ImageURL string    `db:"image_url"`
		ViewBox  string    `db:"view_box"`
		Now      time.Time `db:"now"`
	}{
		ID:       uuid.New(),
		OutletID: outletID,
		Level:    fl.Level,
		Name:     fl.Name,
		ImageURL: fl.ImageURL,
		ViewBox:  fl.ViewBox,
		Now:      time.Now().UTC(),
	}

	const qFloor = `
	INSERT INTO floors
		(floor_id, outlet_id, level, name, image_url, view_box, created_at, updated_at)
	VALUES
		(:floor_id, :outlet_id, :level, :name, :image_url, :view_box, :now, :now)
	ON CONFLICT (outlet_id, level) DO UPDATE
	SET name = EXCLUDED.name,
	    image_url = EXCLUDED.image_url,
	    view_box = EXCLUDED.view_box,
	    updated_at = EXCLUDED.updated_at`

	if err := sqldb.NamedExecContext(ctx, log, tx, qFloor, floorData); err != nil {
		return err
	}

	var row struct {
		ID uuid.UUID `db:"floor_id"`
	}
	if err := sqldb.NamedQueryStruct(ctx, log, tx, `SELECT floor_id FROM floors WHERE outlet_id = :outlet_id AND level = :level`, floorData, &row); err != nil {
		return err
	}

	const qRoom = `
	INSERT INTO rooms
		(room_id, outlet_id, floor_id, room_code, x, y, width, height, status, tenant_name, created_at, updated_at)
	VALUES
		(:room_id, :outlet_id, :floor_id, :room_code, :x, :y, :width, :height, :status, NULLIF(:tenant_name, ''), :now, :now)
	ON CONFLICT (outlet_id, room_code) DO UPDATE
	SET floor_id = EXCLUDED.floor_id,
	    x = EXCLUDED.x,
	    y = EXCLUDED.y,
	    width = EXCLUDED.width,
	    height = EXCLUDED.height,
	    status = EXCLUDED.status,
	    tenant_name = EXCLUDED.tenant_name,
	    updated_at = EXCLUDED.updated_at`

	for _, rm := range fl.Rooms {
		roomData := struct {
			ID         uuid.UUID `db:"room_id"`
			OutletID   uuid.UUID `db:"outlet_id"`
			FloorID    uuid.UUID `db:"floor_id"`
			Code       string    `db:"room_code"`
			X          float64   `db:"x"`
			Y          float64   `db:"y"`
			Width      float64   `db:"width"`
			Height     float64   `db:"height"`
			Status     string    `db:"status"`
			TenantName string    `db:"tenant_name"`
			Now        time.Time `db:"now"`
		}{
			ID:         uuid.New(),
			OutletID:   outletID,
			FloorID:    row.ID,
			Code:       rm.Code,
			X:          rm.X,
			Y:          rm.Y,
			Width:      rm.Width,
			Height:     rm.Height,
			Status:     rm.Status,
			TenantName: rm.TenantName,
			Now:        time.Now().UTC(),
		}

		if err := sqldb.NamedExecContext(ctx, log, tx, qRoom, roomData); err != nil {
			return err
		}
	}

	return nil
}

func seedAdmin(ctx context.Context, log *logger.Logger, tx *sqlx.Tx, cfg SeedConfig) error {

	// An empty password would seed an admin account nobody can log in to.
	if cfg.AdminPassword == "" {
		log.Info(ctx, "seed", "status", "admin password not configured, skipping admin user")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generating password hash: %w", err)
	}

	data := struct {
		ID           uuid.UUID `db:"user_id"`
		Name         string    `db:"name"`
		Email        string    `db:"email"`
		PasswordHash string    `db:"password_hash"`
		Now          time.Time `db:"now"`
	}{
		ID:           uuid.New(),
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Now:          time.Now().UTC(),
	}

	const q = `
	INSERT INTO users
		(user_id, name, email, role, password_hash, enabled, created_at, updated_at)
	VALUES
		(:user_id, :name, :email, 'ADMIN', :password_hash, TRUE, :now, :now)
	ON CONFLICT (email) DO NOTHING`

	return sqldb.NamedExecContext(ctx, log, tx, q, data)
}
