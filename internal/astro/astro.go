// Package astro реализует расчётные операции ведической астрологии
// поверх эфемеридного движка: натальные карты, варги, вимшоттари,
// панчанг, поиск мухурт и совместимость.
package astro

import (
	"errors"
	"fmt"
	"math"
	"time"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
)

// Ephemeris покрывает ту часть движка, которая нужна расчётам.
type Ephemeris interface {
	Position(t time.Time, body models.Body, scheme models.AyanamsaScheme) (ephemeris.Position, error)
	Positions(t time.Time, bodies []models.Body, scheme models.AyanamsaScheme) ([]ephemeris.Position, error)
	AyanamsaValue(t time.Time, scheme models.AyanamsaScheme) float64
	SunEvents(date time.Time, lat, lon float64, tzOffsetMin int) models.SunTimes
	MoonEvents(date time.Time, lat, lon float64, tzOffsetMin int) models.MoonTimes
}

// Ширина накшатры в градусах.
const nakshatraSpan = 360.0 / 27

func posMod(n, m int) int {
	return ((n % m) + m) % m
}

func posModF(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

// rashiOf возвращает знак по сидерической долготе.
func rashiOf(lon float64) models.Rashi {
	return models.Rashi(int(posModF(lon, 360)/30) + 1)
}

// nakshatraOf возвращает стоянку и паду по сидерической долготе.
func nakshatraOf(lon float64) (models.Nakshatra, int) {
	l := posModF(lon, 360)
	idx := int(l / nakshatraSpan)
	pada := int(math.Mod(l, nakshatraSpan)/(nakshatraSpan/4)) + 1
	return models.Nakshatra(idx + 1), pada
}

func wrapComputation(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ephemeris.ErrEpochOutOfRange) {
		return &ComputationError{Op: op, Reason: "moment outside supported years 1000..3000"}
	}
	return fmt.Errorf("%s: %w", op, err)
}
