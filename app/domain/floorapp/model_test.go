package floorapp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stayvie/floorplan/business/domain/floorbus"
	"github.com/stayvie/floorplan/business/domain/roombus"
	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stretchr/testify/require"
)

func TestLevelUnmarshal(t *testing.T) {
	tests := []struct {
		data  string
		want  int
		valid bool
	}{
		{`2`, 2, true},
		{`"2"`, 2, true},
		{`-1`, -1, true},
		{`"two"`, 0, false},
		{`2.5`, 0, false},
		{`""`, 0, false},
	}

	for _, tt := range tests {
		var l Level
		err := json.Unmarshal([]byte(tt.data), &l)
		if !tt.valid {
			require.Error(t, err, "data %s", tt.data)
			continue
		}
		require.NoError(t, err, "data %s", tt.data)
		require.Equal(t, tt.want, int(l), "data %s", tt.data)
	}
}

func TestNewFloorValidate(t *testing.T) {
	var app NewFloor
	require.NoError(t, app.Decode([]byte(`{"level":"3","name":"Lantai 3","viewBox":"0 0 800 600"}`)))
	require.NoError(t, app.Validate())
	require.NotNil(t, app.Level)
	require.Equal(t, Level(3), *app.Level)

	var ground NewFloor
	require.NoError(t, ground.Decode([]byte(`{"level":0,"name":"Lantai Dasar","viewBox":"0 0 800 600"}`)))
	require.NoError(t, ground.Validate(), "a ground floor at level 0 is valid")

	var missingLevel NewFloor
	require.NoError(t, missingLevel.Decode([]byte(`{"name":"Lantai 1","viewBox":"0 0 800 600"}`)))
	require.Error(t, missingLevel.Validate())

	var missingName NewFloor
	require.NoError(t, missingName.Decode([]byte(`{"level":1,"viewBox":"0 0 800 600"}`)))
	require.Error(t, missingName.Validate())

	var missingViewBox NewFloor
	require.NoError(t, missingViewBox.Decode([]byte(`{"level":1,"name":"Lantai 1"}`)))
	require.Error(t, missingViewBox.Validate(), "viewBox is mandatory on create")
}

func multipartRequest(t *testing.T, fields map[string]string, imageContent []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageContent != nil {
		fw, err := w.CreateFormFile("image", "plan.png")
		require.NoError(t, err)
		_, err = fw.Write(imageContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/floors", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestDecodeNewFloorMultipart(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	req := multipartRequest(t, map[string]string{
		"level":   "0",
		"name":    "Lantai Dasar",
		"viewBox": "0 0 800 600",
	}, pngHeader)

	app, header, errResp := decodeNewFloor(req)
	require.Nil(t, errResp, "level 0 with a file decodes cleanly")
	require.NotNil(t, app.Level)
	require.Equal(t, Level(0), *app.Level)
	require.NotNil(t, header)
	require.Equal(t, "plan.png", header.Filename)

	req = multipartRequest(t, map[string]string{
		"level": "1",
		"name":  "Lantai 1",
	}, nil)

	_, _, errResp = decodeNewFloor(req)
	require.NotNil(t, errResp, "missing viewBox is rejected")

	req = multipartRequest(t, map[string]string{
		"level":   "one",
		"name":    "Lantai 1",
		"viewBox": "0 0 800 600",
	}, nil)

	_, _, errResp = decodeNewFloor(req)
	require.NotNil(t, errResp, "non-numeric level is rejected")
}

func TestFloorEncodeEmbedsRooms(t *testing.T) {
	now := time.Now()

	flr := floorbus.Floor{
		ID:       uuid.New(),
		OutletID: uuid.New(),
		Level:    2,
		Name:     name.MustParse("Lantai 2"),
		ViewBox:  "0 0 800 600",
	}

	roms := []roombus.Room{{
		ID:        uuid.New(),
		OutletID:  flr.OutletID,
		FloorID:   flr.ID,
		Code:      "A-201",
		X:         10,
		Y:         20,
		Width:     30,
		Height:    40,
		Status:    roomstatus.Booked,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	data, contentType, err := toAppFloor(flr, roms).Encode()
	require.NoError(t, err)
	require.Equal(t, "application/json", contentType)
	require.Contains(t, string(data), `"id":"A-201"`)
	require.Contains(t, string(data), `"status":"Booked"`)
	require.NotContains(t, string(data), "tenantName")

	data, _, err = toAppFloor(flr, nil).Encode()
	require.NoError(t, err)
	require.Contains(t, string(data), `"rooms":[]`, "nil rooms encode as an empty array")
}
