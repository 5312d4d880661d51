package ephemeris

import (
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// GreenwichSiderealTime возвращает среднее гринвичское звёздное время, градусы 0..360.
func GreenwichSiderealTime(jd float64) float64 {
	t := (jd - j2000) / 36525
	theta := 280.46061837 + 360.98564736629*(jd-j2000) +
		0.000387933*t*t - t*t*t/38710000
	return unit.PMod(theta, 360)
}

// LocalSiderealTime возвращает местное звёздное время, долгота к востоку
// положительна, градусы 0..360.
func LocalSiderealTime(jd, lonEast float64) float64 {
	return unit.PMod(GreenwichSiderealTime(jd)+lonEast, 360)
}

// TrueObliquity возвращает истинный наклон эклиптики, градусы.
func TrueObliquity(jde float64) float64 {
	_, de := nutation.Nutation(jde)
	return nutation.MeanObliquity(jde).Deg() + de.Deg()
}
