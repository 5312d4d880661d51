package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angDiff возвращает разность углов в диапазоне (-180, 180].
func angDiff(a, b float64) float64 {
	d := posModF(a-b, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

func TestAscendantMCZeroObliquity(t *testing.T) {
	// При нулевом наклоне эклиптика совпадает с экватором: середина
	// неба равна RAMC, асцендент отстоит от неё на 90° к востоку.
	for _, ramc := range []float64{0, 45, 180, 350} {
		asc, mc := ascendantMC(ramc, 0, 0)
		assert.InDelta(t, ramc, mc, 1e-9)
		assert.InDelta(t, 0, angDiff(asc, ramc+90), 1e-9)
	}
}

func TestAscendantEastOfMC(t *testing.T) {
	for ramc := 0.0; ramc < 360; ramc += 30 {
		asc, mc := ascendantMC(ramc, 23.4391, 48.85)
		d := posModF(asc-mc, 360)
		assert.Greater(t, d, 0.0, "ramc %v", ramc)
		assert.Less(t, d, 180.0, "ramc %v", ramc)
	}
}

func TestPlacidusCuspPolarError(t *testing.T) {
	_, err := placidusCusp(0, 23.4391, 89, 30, 1.0/3, false)
	require.Error(t, err)
	var cerr *ComputationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "houses", cerr.Op)
}

func TestPlacidusHouses(t *testing.T) {
	asc, cusps, err := placidusHouses(2451545.0, 13.0827, 80.2707, 23.85)
	require.NoError(t, err)
	require.Len(t, cusps, 12)

	for i, c := range cusps {
		assert.Equal(t, i+1, c.House)
		assert.GreaterOrEqual(t, c.Longitude, 0.0)
		assert.Less(t, c.Longitude, 360.0)
		assert.Equal(t, rashiOf(c.Longitude), c.Rashi)
		assert.Equal(t, c.Rashi.Name(), c.RashiName)
		assert.InDelta(t, posModF(c.Longitude, 30), c.DegreeInRashi, 1e-12)
	}

	// Асцендент совпадает с куспидом первого дома.
	assert.InDelta(t, asc, cusps[0].Longitude, 1e-12)

	// Противоположные дома отстоят ровно на полкруга.
	for _, pair := range [][2]int{{1, 7}, {2, 8}, {3, 9}, {4, 10}, {5, 11}, {6, 12}} {
		a := cusps[pair[0]-1].Longitude
		b := cusps[pair[1]-1].Longitude
		assert.InDelta(t, 0, math.Abs(angDiff(a, b))-180, 1e-6, "houses %d/%d", pair[0], pair[1])
	}
}

func TestPlacidusHousesPolarLatitude(t *testing.T) {
	_, _, err := placidusHouses(2451545.0, 89, 0, 23.85)
	require.Error(t, err)
	var cerr *ComputationError
	assert.ErrorAs(t, err, &cerr)
}
