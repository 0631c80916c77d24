package outletbus

import "github.com/stayvie/floorplan/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID   = "outlet_id"
	OrderBySlug = "slug"
	OrderByName = "name"
)
