package outletbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
)

// Outlet represents information about an individual outlet.
type Outlet struct {
	ID          uuid.UUID
	Slug        slug.Slug
	Name        name.Name
	CompanyName name.Name
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOutlet contains information needed to create a new outlet. A zero Slug
// asks the business layer to derive one from Name.
type NewOutlet struct {
	Slug        slug.Slug
	Name        name.Name
	CompanyName name.Name
}

// UpdateOutlet contains information needed to update an outlet.
type UpdateOutlet struct {
	Slug        *slug.Slug
	Name        *name.Name
	CompanyName *name.Name
}
