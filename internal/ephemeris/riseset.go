package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"jyotish/internal/models"
)

// Высота центра диска на видимом горизонте, градусы.
const (
	sunHorizon  = -0.8333
	moonHorizon = 0.125
)

// Шаг грубого скана, сутки.
const scanStep = 10.0 / (24 * 60)

type eclipticFunc func(jde float64) (lon, lat float64)

// equatorial переводит эклиптические координаты даты в экваториальные, градусы.
func equatorial(jde, lonDeg, latDeg float64) (ra, dec float64) {
	eps := TrueObliquity(jde) * math.Pi / 180
	lam := lonDeg * math.Pi / 180
	bet := latDeg * math.Pi / 180
	dec = math.Asin(math.Sin(bet)*math.Cos(eps) +
		math.Cos(bet)*math.Sin(eps)*math.Sin(lam))
	ra = math.Atan2(math.Sin(lam)*math.Cos(eps)-math.Tan(bet)*math.Sin(eps),
		math.Cos(lam))
	return unit.PMod(ra*180/math.Pi, 360), dec * 180 / math.Pi
}

// altitudeAt возвращает высоту тела над горизонтом наблюдателя, градусы.
func altitudeAt(f eclipticFunc, jd, lat, lon float64) float64 {
	elon, elat := f(jd)
	ra, dec := equatorial(jd, elon, elat)
	h := (LocalSiderealTime(jd, lon) - ra) * math.Pi / 180
	phi := lat * math.Pi / 180
	d := dec * math.Pi / 180
	sinAlt := math.Sin(phi)*math.Sin(d) + math.Cos(phi)*math.Cos(d)*math.Cos(h)
	return math.Asin(sinAlt) * 180 / math.Pi
}

// findCrossing ищет первый момент пересечения телом высоты h0 на отрезке
// [jd0, jd1]: при rising снизу вверх, иначе сверху вниз. Грубый скан с шагом
// 10 минут, затем бисекция до секунды. nil, если пересечения нет.
func findCrossing(f eclipticFunc, jd0, jd1, lat, lon, h0 float64, rising bool) *float64 {
	prev := altitudeAt(f, jd0, lat, lon)
	for jd := jd0 + scanStep; jd <= jd1+1e-9; jd += scanStep {
		cur := altitudeAt(f, jd, lat, lon)
		var hit bool
		if rising {
			hit = prev < h0 && cur >= h0
		} else {
			hit = prev > h0 && cur <= h0
		}
		if hit {
			lo, hi := jd-scanStep, jd
			for i := 0; i < 20; i++ {
				mid := (lo + hi) / 2
				a := altitudeAt(f, mid, lat, lon)
				crossed := (rising && a >= h0) || (!rising && a <= h0)
				if crossed {
					hi = mid
				} else {
					lo = mid
				}
			}
			x := (lo + hi) / 2
			return &x
		}
		prev = cur
	}
	return nil
}

func (e *Engine) sunEcliptic(jde float64) (float64, float64) {
	lon, lat, _, _ := e.sunPosition(jde)
	return lon, lat
}

func moonEcliptic(jde float64) (float64, float64) {
	lon, lat, _, _ := moonPosition(jde)
	return lon, lat
}

// SunEvents возвращает восход, заход и солнечный полдень на местную дату.
// Если пересечения горизонта нет, как на полярных широтах, время
// оценивается как 06:00 и 18:00 местного пояса с флагом Estimated.
func (e *Engine) SunEvents(date time.Time, lat, lon float64, tzOffsetMin int) models.SunTimes {
	loc := time.FixedZone("", tzOffsetMin*60)
	y, m, d := date.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)
	jdNoon := JulianDay(noon)

	riseJD := findCrossing(e.sunEcliptic, jdNoon-0.5, jdNoon, lat, lon, sunHorizon, true)
	setJD := findCrossing(e.sunEcliptic, jdNoon, jdNoon+0.5, lat, lon, sunHorizon, false)
	if riseJD == nil || setJD == nil {
		return models.SunTimes{
			Sunrise:   time.Date(y, m, d, 6, 0, 0, 0, loc),
			Sunset:    time.Date(y, m, d, 18, 0, 0, 0, loc),
			SolarNoon: noon,
			Estimated: true,
		}
	}
	rise := TimeFromJD(*riseJD).In(loc)
	set := TimeFromJD(*setJD).In(loc)
	return models.SunTimes{
		Sunrise:   rise,
		Sunset:    set,
		SolarNoon: rise.Add(set.Sub(rise) / 2),
	}
}

// MoonEvents возвращает восход и заход Луны за местные сутки. Любое из событий
// может отсутствовать.
func (e *Engine) MoonEvents(date time.Time, lat, lon float64, tzOffsetMin int) models.MoonTimes {
	loc := time.FixedZone("", tzOffsetMin*60)
	y, m, d := date.Date()
	jd0 := JulianDay(time.Date(y, m, d, 0, 0, 0, 0, loc))

	var mt models.MoonTimes
	if rise := findCrossing(moonEcliptic, jd0, jd0+1, lat, lon, moonHorizon, true); rise != nil {
		t := TimeFromJD(*rise).In(loc)
		mt.Moonrise = &t
	}
	if set := findCrossing(moonEcliptic, jd0, jd0+1, lat, lon, moonHorizon, false); set != nil {
		t := TimeFromJD(*set).In(loc)
		mt.Moonset = &t
	}
	return mt
}
