package outletapp

import (
	"github.com/stayvie/floorplan/business/domain/outletbus"
)

var orderByFields = map[string]string{
	"outlet_id": outletbus.OrderByID,
	"slug":      outletbus.OrderBySlug,
	"name":      outletbus.OrderByName,
}
