package outletapp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
)

type queryParams struct {
	Page    string
	Rows    string
	OrderBy string
	ID      string
	Slug    string
	Name    string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:    values.Get("page"),
		Rows:    values.Get("rows"),
		OrderBy: values.Get("orderBy"),
		ID:      values.Get("outlet_id"),
		Slug:    values.Get("slug"),
		Name:    values.Get("name"),
	}
}

func parseFilter(qp queryParams) (outletbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter outletbus.QueryFilter

	if qp.ID != "" {
		id, err := uuid.Parse(qp.ID)
		switch err {
		case nil:
			filter.ID = &id
		default:
			fieldErrors.Add("outlet_id", err)
		}
	}

	if qp.Slug != "" {
		slg, err := slug.Parse(qp.Slug)
		switch err {
		case nil:
			filter.Slug = &slg
		default:
			fieldErrors.Add("slug", err)
		}
	}

	if qp.Name != "" {
		nme, err := name.Parse(qp.Name)
		switch err {
		case nil:
			filter.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if fieldErrors != nil {
		return outletbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
