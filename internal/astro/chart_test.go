package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
)

func chartStub() *stubEphemeris {
	eph := newStubEphemeris()
	eph.lons = map[models.Body]float64{
		models.Sun:     10,
		models.Moon:    101,
		models.Mars:    200,
		models.Mercury: 355,
		models.Jupiter: 50,
		models.Venus:   80,
		models.Saturn:  300,
		models.Rahu:    120,
		models.Ketu:    300,
	}
	return eph
}

func TestCalculateChart(t *testing.T) {
	eph := chartStub()
	in := ChartInput{
		Moment:      time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Latitude:    13.0827,
		Longitude:   80.2707,
		TZOffsetMin: 330,
		Ayanamsa:    models.AyanamsaLahiri,
	}

	chart, err := CalculateChart(eph, in)
	require.NoError(t, err)

	assert.True(t, chart.Moment.Equal(in.Moment))
	assert.Equal(t, ephemeris.JulianDay(in.Moment), chart.JulianDay)
	assert.Equal(t, 330, chart.TZOffsetMin)
	assert.Equal(t, models.AyanamsaLahiri, chart.Ayanamsa)
	assert.Equal(t, 24.0, chart.AyanamsaValue)

	require.Len(t, chart.Bodies, 9)
	for i, want := range models.ChartBodies() {
		assert.Equal(t, want, chart.Bodies[i].Body)
	}

	assert.Equal(t, models.Rashi(4), chart.MoonRashi)
	assert.Equal(t, models.Nakshatra(8), chart.MoonNakshatra)
	assert.Equal(t, models.Rashi(1), chart.SunRashi)

	require.Len(t, chart.Houses, 12)
	assert.Equal(t, rashiOf(chart.Ascendant), chart.AscendantRashi)
	ascNak, _ := nakshatraOf(chart.Ascendant)
	assert.Equal(t, ascNak, chart.AscendantNakshatra)
	assert.InDelta(t, chart.Ascendant, chart.Houses[0].Longitude, 1e-12)

	assert.InDelta(t, 101, chart.MoonLongitude(), 1e-12)
}

func TestCalculateChartPositionError(t *testing.T) {
	eph := chartStub()
	eph.posErr = assert.AnError

	_, err := CalculateChart(eph, ChartInput{
		Moment:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Ayanamsa: models.AyanamsaLahiri,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "chart")
}

func TestCalculateChartPolarLatitude(t *testing.T) {
	eph := chartStub()

	_, err := CalculateChart(eph, ChartInput{
		Moment:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Latitude: 89,
		Ayanamsa: models.AyanamsaLahiri,
	})
	require.Error(t, err)
	var cerr *ComputationError
	assert.ErrorAs(t, err, &cerr)
}

func TestCurrentPositions(t *testing.T) {
	eph := chartStub()

	positions, err := CurrentPositions(eph, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), models.AyanamsaLahiri)
	require.NoError(t, err)
	require.Len(t, positions, 9)

	for i, want := range models.ChartBodies() {
		assert.Equal(t, want, positions[i].Body)
	}
}

func TestToBodyPosition(t *testing.T) {
	bp := toBodyPosition(ephemeris.Position{
		Body:      models.Mercury,
		Longitude: 355,
		Latitude:  -1.2,
		Speed:     -0.5,
	})

	assert.Equal(t, "Mercury", bp.Name)
	assert.Equal(t, "Budha", bp.Sanskrit)
	assert.Equal(t, models.Rashi(12), bp.Rashi)
	assert.Equal(t, "Meena", bp.RashiName)
	assert.InDelta(t, 25, bp.DegreeInRashi, 1e-9)
	assert.Equal(t, models.Nakshatra(27), bp.Nakshatra)
	assert.Equal(t, "Revati", bp.NakshatraName)
	assert.Equal(t, 3, bp.Pada)
	assert.Equal(t, "Mercury", bp.NakshatraLord)
	assert.Equal(t, -0.5, bp.Speed)
	assert.Equal(t, -1.2, bp.Latitude)
}
