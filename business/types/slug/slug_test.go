package slug_test

import (
	"testing"

	"github.com/stayvie/floorplan/business/types/slug"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"bhaskara-osix", true},
		{"osix", true},
		{"a1-b2-c3", true},
		{"", false},
		{"Bhaskara", false},
		{"bhaskara osix", false},
		{"-osix", false},
		{"osix-", false},
		{"osix--two", false},
	}

	for _, tt := range tests {
		s, err := slug.Parse(tt.value)
		if !tt.valid {
			require.Error(t, err, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		require.Equal(t, tt.value, s.String())
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Bhaskara Osix", "bhaskara-osix"},
		{"  Stayvie Co-Living  ", "stayvie-co-living"},
		{"Osix (East Wing)", "osix-east-wing"},
		{"ALL CAPS", "all-caps"},
	}

	for _, tt := range tests {
		s, err := slug.Derive(tt.name)
		require.NoError(t, err, "name %q", tt.name)
		require.Equal(t, tt.want, s.String())
	}

	_, err := slug.Derive("!!!")
	require.Error(t, err)
}
