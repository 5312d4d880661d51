package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWarmLocations(t *testing.T) {
	locs, err := ParseWarmLocations("28.6139,77.2090,330; 19.0760,72.8777,330")

	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, WarmLocation{Lat: 28.6139, Lon: 77.209, TZOffsetMin: 330}, locs[0])
	assert.Equal(t, WarmLocation{Lat: 19.076, Lon: 72.8777, TZOffsetMin: 330}, locs[1])
}

func TestParseWarmLocationsEmpty(t *testing.T) {
	locs, err := ParseWarmLocations("  ")

	require.NoError(t, err)
	assert.Nil(t, locs)
}

func TestParseWarmLocationsMalformed(t *testing.T) {
	cases := []string{
		"28.6139,77.2090",
		"abc,77.2090,330",
		"28.6139,xyz,330",
		"28.6139,77.2090,half past five",
	}

	for _, raw := range cases {
		_, err := ParseWarmLocations(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}
