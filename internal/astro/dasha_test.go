package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/models"
)

func TestVimshottariTimelineFromNakshatraStart(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)

	// Луна в нуле Ашвини: махадаша Кету идёт целиком.
	periods := VimshottariTimeline(0, birth, 120)
	require.Len(t, periods, 10)

	wantRulers := []models.Body{
		models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
		models.Rahu, models.Jupiter, models.Saturn, models.Mercury, models.Ketu,
	}
	wantYears := []float64{7, 20, 6, 10, 7, 18, 16, 19, 17, 7}
	for i, p := range periods {
		assert.Equal(t, wantRulers[i], p.Ruler)
		assert.InDelta(t, wantYears[i], p.DurationYears, 1e-9)
		assert.Equal(t, 1, p.Level)
	}

	assert.True(t, periods[0].Start.Equal(birth))
	for i := 1; i < len(periods); i++ {
		assert.True(t, periods[i].Start.Equal(periods[i-1].End))
	}

	// Девять полных периодов закрывают 120-летний цикл.
	var total float64
	for _, p := range periods[:9] {
		total += p.DurationYears
	}
	assert.InDelta(t, 120, total, 1e-9)
}

func TestVimshottariTimelineElapsedFraction(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)

	// Четверть Ашвини прожита: от семи лет Кету остаётся 5.25.
	periods := VimshottariTimeline(nakshatraSpan/4, birth, 30)
	require.NotEmpty(t, periods)
	assert.Equal(t, models.Ketu, periods[0].Ruler)
	assert.InDelta(t, 5.25, periods[0].DurationYears, 1e-9)
	assert.InDelta(t, 20, periods[1].DurationYears, 1e-9)
}

func TestVimshottariTimelineRulerFromMoon(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)

	// Луна в середине Пушьи: стартует Сатурн с половиной срока.
	periods := VimshottariTimeline(100, birth, 120)
	require.NotEmpty(t, periods)
	assert.Equal(t, models.Saturn, periods[0].Ruler)
	assert.InDelta(t, 9.5, periods[0].DurationYears, 1e-6)
	assert.Equal(t, models.Mercury, periods[1].Ruler)
}

func TestVimshottariTimelineHorizon(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)

	periods := VimshottariTimeline(0, birth, 20)
	require.Len(t, periods, 2)
	assert.Equal(t, models.Ketu, periods[0].Ruler)
	assert.Equal(t, models.Venus, periods[1].Ruler)
}

func TestSubPeriods(t *testing.T) {
	start := time.Date(1997, 5, 15, 10, 30, 0, 0, time.UTC)
	parent := models.DashaPeriod{
		Ruler:         models.Venus,
		RulerName:     "Venus",
		Start:         start,
		End:           start.Add(yearsToDuration(20)),
		Level:         1,
		DurationYears: 20,
	}

	subs := SubPeriods(parent)
	require.Len(t, subs, 9)

	// Антардаши начинаются с правителя родителя.
	assert.Equal(t, models.Venus, subs[0].Ruler)
	assert.Equal(t, models.Sun, subs[1].Ruler)
	assert.Equal(t, models.Ketu, subs[8].Ruler)

	assert.InDelta(t, 20.0*20/120, subs[0].DurationYears, 1e-9)
	assert.InDelta(t, 20.0*6/120, subs[1].DurationYears, 1e-9)

	assert.True(t, subs[0].Start.Equal(parent.Start))
	assert.True(t, subs[8].End.Equal(parent.End))
	for i := 1; i < 9; i++ {
		assert.True(t, subs[i].Start.Equal(subs[i-1].End))
		assert.Equal(t, 2, subs[i].Level)
	}

	var total float64
	for _, s := range subs {
		total += s.DurationYears
	}
	assert.InDelta(t, 20, total, 1e-9)
}

func TestExpandSubPeriods(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)
	periods := VimshottariTimeline(0, birth, 120)

	ExpandSubPeriods(periods, 3)
	for _, p := range periods {
		require.Len(t, p.SubPeriods, 9)
		for _, sub := range p.SubPeriods {
			assert.Equal(t, 2, sub.Level)
			require.Len(t, sub.SubPeriods, 9)
			for _, subsub := range sub.SubPeriods {
				assert.Equal(t, 3, subsub.Level)
				assert.Empty(t, subsub.SubPeriods)
			}
		}
	}
}

func TestExpandSubPeriodsSingleLevel(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)
	periods := VimshottariTimeline(0, birth, 120)

	ExpandSubPeriods(periods, 1)
	for _, p := range periods {
		assert.Empty(t, p.SubPeriods)
	}
}
