package floorbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/types/name"
)

// Floor represents a single floor plan inside an outlet. ImageURL is empty
// until a background image has been uploaded for the floor.
type Floor struct {
	ID        uuid.UUID
	OutletID  uuid.UUID
	Level     int
	Name      name.Name
	ImageURL  string
	ViewBox   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFloor contains information needed to create a new floor.
type NewFloor struct {
	OutletID uuid.UUID
	Level    int
	Name     name.Name
	ImageURL string
	ViewBox  string
}

// UpdateFloor contains information needed to update a floor.
type UpdateFloor struct {
	Level    *int
	Name     *name.Name
	ImageURL *string
	ViewBox  *string
}
