package ephemeris

import (
	"errors"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Диапазон лет, в котором ряды дают заявленную точность.
const (
	MinYear = 1000
	MaxYear = 3000
)

var ErrEpochOutOfRange = errors.New("ephemeris: moment outside supported years 1000..3000")

// JulianDay возвращает юлианскую дату по моменту времени.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// TimeFromJD возвращает момент UTC по юлианской дате.
func TimeFromJD(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// CheckEpoch проверяет, что момент внутри поддерживаемого диапазона.
func CheckEpoch(t time.Time) error {
	y := t.UTC().Year()
	if y < MinYear || y > MaxYear {
		return ErrEpochOutOfRange
	}
	return nil
}
