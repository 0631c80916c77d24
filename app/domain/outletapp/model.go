package outletapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/outletbus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/slug"
)

// Outlet represents information about an individual outlet.
type Outlet struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the web.Encoder interface.
func (o Outlet) Encode() ([]byte, string, error) {
	data, err := json.Marshal(o)
	return data, "application/json", err
}

func toAppOutlet(bus outletbus.Outlet) Outlet {
	return Outlet{
		ID:          bus.ID.String(),
		Slug:        bus.Slug.String(),
		Name:        bus.Name.String(),
		CompanyName: bus.CompanyName.String(),
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppOutlets(otls []outletbus.Outlet) []Outlet {
	app := make([]Outlet, len(otls))
	for i, otl := range otls {
		app[i] = toAppOutlet(otl)
	}
	return app
}

// =============================================================================

// NewOutlet defines the data needed to add a new outlet. Slug is optional and
// derived from the name when absent.
type NewOutlet struct {
	Slug        string `json:"slug"`
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *NewOutlet) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewOutlet) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewOutlet(app NewOutlet) (outletbus.NewOutlet, error) {
	var slg slug.Slug
	if app.Slug != "" {
		var err error
		slg, err = slug.Parse(app.Slug)
		if err != nil {
			return outletbus.NewOutlet{}, fmt.Errorf("parse slug: %w", err)
		}
	}

	nme, err := name.Parse(app.Name)
	if err != nil {
		return outletbus.NewOutlet{}, fmt.Errorf("parse name: %w", err)
	}

	company, err := name.Parse(app.CompanyName)
	if err != nil {
		return outletbus.NewOutlet{}, fmt.Errorf("parse company name: %w", err)
	}

	bus := outletbus.NewOutlet{
		Slug:        slg,
		Name:        nme,
		CompanyName: company,
	}

	return bus, nil
}

// =============================================================================

// UpdateOutlet defines the data needed to update an outlet.
type UpdateOutlet struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateOutlet) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateOutlet) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateOutlet(app UpdateOutlet) (outletbus.UpdateOutlet, error) {
	var slg *slug.Slug
	if app.Slug != nil {
		s, err := slug.Parse(*app.Slug)
		if err != nil {
			return outletbus.UpdateOutlet{}, fmt.Errorf("parse slug: %w", err)
		}
		slg = &s
	}

	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return outletbus.UpdateOutlet{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	var company *name.Name
	if app.CompanyName != nil {
		c, err := name.Parse(*app.CompanyName)
		if err != nil {
			return outletbus.UpdateOutlet{}, fmt.Errorf("parse company name: %w", err)
		}
		company = &c
	}

	bus := outletbus.UpdateOutlet{
		Slug:        slg,
		Name:        nme,
		CompanyName: company,
	}

	return bus, nil
}
