package outletdb

import (
	"fmt"

	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/sdk/order"
)

var orderByFields = map[string]string{
	outletbus.OrderByID:   "outlet_id",
	outletbus.OrderBySlug: "slug",
	outletbus.OrderByName: "name",
}

func orderByClause(orderBy order.By) (string, error) {
	by, exists := orderByFields[orderBy.Field]
	if !exists {
		return "", fmt.Errorf("field %q does not exist", orderBy.Field)
	}

	return " ORDER BY " + by + " " + orderBy.Direction, nil
}
