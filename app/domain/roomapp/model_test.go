package roomapp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		data  string
		want  float64
		valid bool
	}{
		{`12.5`, 12.5, true},
		{`"12.5"`, 12.5, true},
		{`0`, 0, true},
		{`"-3"`, -3, true},
		{`"abc"`, 0, false},
		{`""`, 0, false},
		{`"NaN"`, 0, false},
		{`"Inf"`, 0, false},
	}

	for _, tt := range tests {
		var n Number
		err := json.Unmarshal([]byte(tt.data), &n)
		if !tt.valid {
			require.Error(t, err, "data %s", tt.data)
			continue
		}
		require.NoError(t, err, "data %s", tt.data)
		require.Equal(t, tt.want, float64(n), "data %s", tt.data)
	}
}

func TestNewRoomDecode(t *testing.T) {
	var app NewRoom
	err := app.Decode([]byte(`{"id":"A-101","x":"10","y":20,"width":3.5,"height":"4.5","status":"Booked","tenantName":"Budi"}`))
	require.NoError(t, err)
	require.NoError(t, app.Validate())

	bus, err := toBusNewRoom(app)
	require.NoError(t, err)
	require.Equal(t, "A-101", bus.Code)
	require.Equal(t, 10.0, bus.X)
	require.Equal(t, 20.0, bus.Y)
	require.Equal(t, 3.5, bus.Width)
	require.Equal(t, 4.5, bus.Height)
	require.Equal(t, "Booked", bus.Status.String())
	require.Equal(t, "Budi", bus.TenantName.String())
}

func TestNewRoomValidate(t *testing.T) {
	var missingID NewRoom
	require.NoError(t, missingID.Decode([]byte(`{"x":1,"y":2,"width":3,"height":4,"status":"Booked"}`)))
	require.Error(t, missingID.Validate())

	var missingStatus NewRoom
	require.NoError(t, missingStatus.Decode([]byte(`{"id":"A-101","x":1,"y":2,"width":3,"height":4}`)))
	require.Error(t, missingStatus.Validate())

	var badStatus NewRoom
	require.NoError(t, badStatus.Decode([]byte(`{"id":"A-101","status":"Free"}`)))
	require.NoError(t, badStatus.Validate())
	_, err := toBusNewRoom(badStatus)
	require.Error(t, err)
}

func TestBulkStatusValidate(t *testing.T) {
	var empty BulkStatus
	require.NoError(t, empty.Decode([]byte(`{"ids":[],"status":"Booked"}`)))
	require.Error(t, empty.Validate())

	var blank BulkStatus
	require.NoError(t, blank.Decode([]byte(`{"ids":["A-101",""],"status":"Booked"}`)))
	require.Error(t, blank.Validate())

	var ok BulkStatus
	require.NoError(t, ok.Decode([]byte(`{"ids":["A-101","A-102"],"status":"Sementara"}`)))
	require.NoError(t, ok.Validate())
}

func TestRoomEncodeOmitsEmptyTenant(t *testing.T) {
	data, _, err := Room{ID: "A-101", X: 1, Y: 2, Width: 3, Height: 4, Status: "Booked"}.Encode()
	require.NoError(t, err)
	require.NotContains(t, string(data), "tenantName")
	require.Contains(t, string(data), `"id":"A-101"`)
}
