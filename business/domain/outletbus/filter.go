package outletbus

import (
	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
)

// QueryFilter holds the available fields a query can be filtered on. The
// pointer semantics mean the use of the field is optional.
type QueryFilter struct {
	ID   *uuid.UUID
	Slug *slug.Slug
	Name *name.Name
}
