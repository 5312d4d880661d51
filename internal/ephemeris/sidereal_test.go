package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreenwichSiderealTime(t *testing.T) {
	// 1987-04-10 00:00 UT, справочное значение 13h10m46.3668s.
	got := GreenwichSiderealTime(2446895.5)
	assert.InDelta(t, 197.693195, got, 0.0002)
}

func TestGreenwichSiderealTimeRange(t *testing.T) {
	for _, jd := range []float64{2451545.0, 2460310.5, 2440587.5, 2466154.25} {
		got := GreenwichSiderealTime(jd)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	jd := 2451545.0
	gmst := GreenwichSiderealTime(jd)

	// Восточная долгота прибавляется, результат нормализован.
	assert.InDelta(t, gmst+30, LocalSiderealTime(jd, 30), 1e-9)

	west := LocalSiderealTime(jd, -300)
	assert.GreaterOrEqual(t, west, 0.0)
	assert.Less(t, west, 360.0)
}

func TestTrueObliquity(t *testing.T) {
	// Наклон эклиптики около 23.44 градуса на современные эпохи.
	assert.InDelta(t, 23.4393, TrueObliquity(2451545.0), 0.01)
	assert.InDelta(t, 23.44, TrueObliquity(2460310.5), 0.02)
}
