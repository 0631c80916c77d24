package roombus

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/roomstatus"
)

// Room represents a rectangle drawn on a floor plan. The geometry fields are
// expressed in the coordinate space of the floor's view box.
type Room struct {
	ID         uuid.UUID
	OutletID   uuid.UUID
	FloorID    uuid.UUID
	Code       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Status     roomstatus.Status
	TenantName name.Null
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRoom contains information needed to create a new room.
type NewRoom struct {
	OutletID   uuid.UUID
	FloorID    uuid.UUID
	Code       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Status     roomstatus.Status
	TenantName name.Null
}

// UpdateRoom contains information needed to update a room.
type UpdateRoom struct {
	Code       *string
	X          *float64
	Y          *float64
	Width      *float64
	Height     *float64
	Status     *roomstatus.Status
	TenantName *name.Null
}
