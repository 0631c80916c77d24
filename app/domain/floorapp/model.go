package floorapp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/app/domain/roomapp"
	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/types/name"
)

// Level accepts a JSON number or a numeric string for the floor level.
type Level int

// UnmarshalJSON implements the json.Unmarshaler interface.
func (l *Level) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid level %q", s)
	}

	*l = Level(v)
	return nil
}

// =============================================================================

// Floor represents information about an individual floor with its rooms.
type Floor struct {
	ID       string         `json:"id"`
	OutletID string         `json:"outletId"`
	Level    int            `json:"level"`
	Name     string         `json:"name"`
	ImageURL string         `json:"imageUrl"`
	ViewBox  string         `json:"viewBox"`
	Rooms    []roomapp.Room `json:"rooms"`
}

// Encode implements the web.Encoder interface.
func (f Floor) Encode() ([]byte, string, error) {
	data, err := json.Marshal(f)
	return data, "application/json", err
}

func toAppFloor(bus floorbus.Floor, roms []roombus.Room) Floor {
	return Floor{
		ID:       bus.ID.String(),
		OutletID: bus.OutletID.String(),
		Level:    bus.Level,
		Name:     bus.Name.String(),
		ImageURL: bus.ImageURL,
		ViewBox:  bus.ViewBox,
		Rooms:    roomapp.ToAppRooms(roms),
	}
}

// Floors is a list of floors that encodes as a JSON array.
type Floors []Floor

// Encode implements the web.Encoder interface.
func (fs Floors) Encode() ([]byte, string, error) {
	data, err := json.Marshal(fs)
	return data, "application/json", err
}

// =============================================================================

// NewFloor defines the data needed to add a new floor. Level is a pointer so
// a ground floor at level 0 passes the required check.
type NewFloor struct {
	Level    *Level `json:"level" validate:"required"`
	Name     string `json:"name" validate:"required"`
	ViewBox  string `json:"viewBox" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *NewFloor) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewFloor) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewFloor(app NewFloor, outletID uuid.UUID) (floorbus.NewFloor, error) {
	nme, err := name.Parse(app.Name)
	if err != nil {
		return floorbus.NewFloor{}, fmt.Errorf("parse name: %w", err)
	}

	bus := floorbus.NewFloor{
		OutletID: outletID,
		Level:    int(*app.Level),
		Name:     nme,
		ImageURL: app.ImageURL,
		ViewBox:  app.ViewBox,
	}

	return bus, nil
}

// =============================================================================

// UpdateFloor defines the data needed to update a floor.
type UpdateFloor struct {
	Level    *Level  `json:"level"`
	Name     *string `json:"name"`
	ViewBox  *string `json:"viewBox"`
	ImageURL *string `json:"imageUrl"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateFloor) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateFloor) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateFloor(app UpdateFloor) (floorbus.UpdateFloor, error) {
	var level *int
	if app.Level != nil {
		v := int(*app.Level)
		level = &v
	}

	var nme *name.Name
	if app.Name != nil {
		nm, err := name.Parse(*app.Name)
		if err != nil {
			return floorbus.UpdateFloor{}, fmt.Errorf("parse name: %w", err)
		}
		nme = &nm
	}

	bus := floorbus.UpdateFloor{
		Level:    level,
		Name:     nme,
		ImageURL: app.ImageURL,
		ViewBox:  app.ViewBox,
	}

	return bus, nil
}
