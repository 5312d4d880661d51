package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/astro"
	"jyotish/internal/models"
	"jyotish/internal/repository"
)

func testChartInput() astro.ChartInput {
	return astro.ChartInput{
		Moment:      time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC),
		Latitude:    28.6139,
		Longitude:   77.2090,
		TZOffsetMin: 330,
		Ayanamsa:    models.AyanamsaLahiri,
	}
}

func TestChartServiceGetChartDefaultDivisions(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewChartService(eph, repository.NewMemoryCacheRepository(), time.Hour)

	bundle, err := svc.GetChart(context.Background(), testChartInput(), nil)

	require.NoError(t, err)
	require.NotNil(t, bundle.Chart)
	assert.Len(t, bundle.Chart.Bodies, 9)
	assert.Equal(t, models.Nakshatra(11), bundle.Chart.MoonNakshatra)
	assert.Equal(t, models.Rashi(5), bundle.Chart.MoonRashi)

	// Без явного списка варг отдаются раши и навамша.
	require.Len(t, bundle.Divisional, 2)
	assert.Equal(t, 1, bundle.Divisional[0].Division)
	assert.Equal(t, 9, bundle.Divisional[1].Division)
	assert.Contains(t, bundle.Divisional[1].Positions, "Ascendant")
}

func TestChartServiceGetChartCaches(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewChartService(eph, repository.NewMemoryCacheRepository(), time.Hour)
	ctx := context.Background()

	_, err := svc.GetChart(ctx, testChartInput(), []int{9})
	require.NoError(t, err)
	calls := eph.positionCalls

	bundle, err := svc.GetChart(ctx, testChartInput(), []int{9})
	require.NoError(t, err)
	assert.Equal(t, calls, eph.positionCalls)
	require.Len(t, bundle.Divisional, 1)
	assert.Equal(t, 9, bundle.Divisional[0].Division)
}

func TestChartServiceGetDivisional(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewChartService(eph, repository.NewMemoryCacheRepository(), time.Hour)
	ctx := context.Background()

	dc, err := svc.GetDivisional(ctx, testChartInput(), 9)
	require.NoError(t, err)
	assert.Equal(t, 9, dc.Division)
	assert.Contains(t, dc.Positions, "Ascendant")

	calls := eph.positionCalls
	_, err = svc.GetDivisional(ctx, testChartInput(), 9)
	require.NoError(t, err)
	assert.Equal(t, calls, eph.positionCalls)
}

func TestChartServiceGetDashaHorizon(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewChartService(eph, repository.NewMemoryCacheRepository(), time.Hour)

	// Луна на 136 градусах: махадаша Венеры с пятой частью позади.
	periods, err := svc.GetDasha(context.Background(), testChartInput(), 1, 50)

	require.NoError(t, err)
	require.Len(t, periods, 5)
	assert.Equal(t, models.Venus, periods[0].Ruler)
	assert.InDelta(t, 16.0, periods[0].DurationYears, 1e-9)
	assert.Equal(t, models.Rahu, periods[4].Ruler)
	assert.Empty(t, periods[0].SubPeriods)
}

func TestChartServiceGetDashaClampsLevels(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewChartService(eph, repository.NewMemoryCacheRepository(), time.Hour)

	// Запрошенные уровни и горизонт вне диапазона приводятся к допустимым.
	periods, err := svc.GetDasha(context.Background(), testChartInput(), 9, -1)

	require.NoError(t, err)
	require.Len(t, periods, 10)

	require.NotEmpty(t, periods[0].SubPeriods)
	sub := periods[0].SubPeriods[0]
	assert.Equal(t, 2, sub.Level)
	require.NotEmpty(t, sub.SubPeriods)
	assert.Equal(t, 3, sub.SubPeriods[0].Level)
	assert.Empty(t, sub.SubPeriods[0].SubPeriods)
}
