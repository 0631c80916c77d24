package roomstatus_test

import (
	"testing"

	"github.com/stayvie/floorplan/business/types/roomstatus"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := roomstatus.Parse("Booked")
	require.NoError(t, err)
	require.True(t, s.Equal(roomstatus.Booked))

	s, err = roomstatus.Parse("Sementara")
	require.NoError(t, err)
	require.True(t, s.Equal(roomstatus.Temporary))

	_, err = roomstatus.Parse("booked")
	require.Error(t, err)

	_, err = roomstatus.Parse("Free")
	require.Error(t, err)

	_, err = roomstatus.Parse("")
	require.Error(t, err)
}
