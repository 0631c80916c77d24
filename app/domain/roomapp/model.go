package roomapp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/roomstatus"
)

// Number accepts a JSON number or a numeric string for the geometry fields.
// NaN and infinities are rejected.
type Number float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", s)
	}

	*n = Number(v)
	return nil
}

// =============================================================================

// Room represents information about an individual room. ID carries the room
// code, unique within the outlet.
type Room struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Status     string  `json:"status"`
	TenantName string  `json:"tenantName,omitempty"`
}

// Encode implements the web.Encoder interface.
func (r Room) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}

// ToAppRoom converts a business room to its wire representation.
func ToAppRoom(bus roombus.Room) Room {
	return Room{
		ID:         bus.Code,
		X:          bus.X,
		Y:          bus.Y,
		Width:      bus.Width,
		Height:     bus.Height,
		Status:     bus.Status.String(),
		TenantName: bus.TenantName.String(),
	}
}

// ToAppRooms converts a list of business rooms to their wire representation.
// The result is never nil so empty floors encode as an empty JSON array.
func ToAppRooms(roms []roombus.Room) []Room {
	app := make([]Room, len(roms))
	for i, rom := range roms {
		app[i] = ToAppRoom(rom)
	}
	return app
}

// Rooms is a list of rooms that encodes as a JSON array.
type Rooms []Room

// Encode implements the web.Encoder interface.
func (rs Rooms) Encode() ([]byte, string, error) {
	data, err := json.Marshal(rs)
	return data, "application/json", err
}

// =============================================================================

// NewRoom defines the data needed to add a new room. ID carries the room code.
type NewRoom struct {
	ID         string `json:"id" validate:"required"`
	X          Number `json:"x"`
	Y          Number `json:"y"`
	Width      Number `json:"width"`
	Height     Number `json:"height"`
	Status     string `json:"status" validate:"required"`
	TenantName string `json:"tenantName"`
}

// Decode implements the web.Decoder interface.
func (app *NewRoom) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewRoom) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewRoom(app NewRoom) (roombus.NewRoom, error) {
	status, err := roomstatus.Parse(app.Status)
	if err != nil {
		return roombus.NewRoom{}, fmt.Errorf("parse status: %w", err)
	}

	tenant, err := name.ParseNull(app.TenantName)
	if err != nil {
		return roombus.NewRoom{}, fmt.Errorf("parse tenant name: %w", err)
	}

	bus := roombus.NewRoom{
		Code:       app.ID,
		X:          float64(app.X),
		Y:          float64(app.Y),
		Width:      float64(app.Width),
		Height:     float64(app.Height),
		Status:     status,
		TenantName: tenant,
	}

	return bus, nil
}

// =============================================================================

// UpdateRoom defines the data needed to update a room.
type UpdateRoom struct {
	ID         *string `json:"id"`
	X          *Number `json:"x"`
	Y          *Number `json:"y"`
	Width      *Number `json:"width"`
	Height     *Number `json:"height"`
	Status     *string `json:"status"`
	TenantName *string `json:"tenantName"`
}

// Decode implements the web.Decoder interface.
func (app *UpdateRoom) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateRoom) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateRoom(app UpdateRoom) (roombus.UpdateRoom, error) {
	var status *roomstatus.Status
	if app.Status != nil {
		st, err := roomstatus.Parse(*app.Status)
		if err != nil {
			return roombus.UpdateRoom{}, fmt.Errorf("parse status: %w", err)
		}
		status = &st
	}

	var tenant *name.Null
	if app.TenantName != nil {
		t, err := name.ParseNull(*app.TenantName)
		if err != nil {
			return roombus.UpdateRoom{}, fmt.Errorf("parse tenant name: %w", err)
		}
		tenant = &t
	}

	bus := roombus.UpdateRoom{
		Code:       app.ID,
		X:          (*float64)(app.X),
		Y:          (*float64)(app.Y),
		Width:      (*float64)(app.Width),
		Height:     (*float64)(app.Height),
		Status:     status,
		TenantName: tenant,
	}

	return bus, nil
}

// =============================================================================

// BulkStatus defines the data needed to update the status of a set of rooms.
type BulkStatus struct {
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
	Status string   `json:"status" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *BulkStatus) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app BulkStatus) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
