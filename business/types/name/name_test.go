package name_test

import (
	"testing"

	"github.com/stayvie/floorplan/business/types/name"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		value string
		want  string
		valid bool
	}{
		{"Budi Santoso", "Budi Santoso", true},
		{"  Lantai 2  ", "Lantai 2", true},
		{"O'Brien", "O'Brien", true},
		{"Stayvie Co-Living", "Stayvie Co-Living", true},
		{"", "", false},
		{"   ", "", false},
		{"<script>", "", false},
	}

	for _, tt := range tests {
		n, err := name.Parse(tt.value)
		if !tt.valid {
			require.Error(t, err, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		require.Equal(t, tt.want, n.String())
	}
}

func TestParseNull(t *testing.T) {
	n, err := name.ParseNull("")
	require.NoError(t, err)
	require.False(t, n.Valid())
	require.Equal(t, "", n.String())

	n, err = name.ParseNull("Budi")
	require.NoError(t, err)
	require.True(t, n.Valid())
	require.Equal(t, "Budi", n.String())

	_, err = name.ParseNull("<bad>")
	require.Error(t, err)
}
