package outletdb

import (
	"bytes"
	"strings"

	"github.com/stayvie/floorplan/business/domain/outletbus"
)

func applyFilter(filter outletbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.ID != nil {
		data["outlet_id"] = *filter.ID
		wc = append(wc, "outlet_id = :outlet_id")
	}

	if filter.Slug != nil {
		data["slug"] = filter.Slug.String()
		wc = append(wc, "slug = :slug")
	}

	if filter.Name != nil {
		data["name"] = "%" + filter.Name.String() + "%"
		wc = append(wc, "name LIKE :name")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
