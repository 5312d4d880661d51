package astro

import (
	"math"
	"time"

	"jyotish/internal/models"
)

// Цикл вимшоттари: девять правителей, сумма лет равна 120.
var dashaSequence = []struct {
	ruler models.Body
	years float64
}{
	{models.Ketu, 7},
	{models.Venus, 20},
	{models.Sun, 6},
	{models.Moon, 10},
	{models.Mars, 7},
	{models.Rahu, 18},
	{models.Jupiter, 16},
	{models.Saturn, 19},
	{models.Mercury, 17},
}

const (
	dashaCycleYears = 120.0
	daysPerYear     = 365.25
)

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * daysPerYear * 24 * float64(time.Hour))
}

// VimshottariTimeline строит махадаши от рождения на horizonYears вперёд.
// Правителя первого периода задаёт стоянка Луны, его длительность
// усечена на прожитую долю стоянки.
func VimshottariTimeline(moonLon float64, birth time.Time, horizonYears float64) []models.DashaPeriod {
	l := posModF(moonLon, 360)
	idx := int(l / nakshatraSpan)
	fraction := math.Mod(l, nakshatraSpan) / nakshatraSpan

	first := dashaSequence[idx%9]
	remaining := first.years * (1 - fraction)

	periods := make([]models.DashaPeriod, 0, 10)
	current := birth
	end := current.Add(yearsToDuration(remaining))
	periods = append(periods, models.DashaPeriod{
		Ruler:         first.ruler,
		RulerName:     first.ruler.String(),
		Start:         current,
		End:           end,
		Level:         1,
		DurationYears: remaining,
	})
	current = end

	for i := 1; i <= 9; i++ {
		if current.Sub(birth).Hours()/24/daysPerYear > horizonYears {
			break
		}
		seq := dashaSequence[(idx+i)%9]
		end = current.Add(yearsToDuration(seq.years))
		periods = append(periods, models.DashaPeriod{
			Ruler:         seq.ruler,
			RulerName:     seq.ruler.String(),
			Start:         current,
			End:           end,
			Level:         1,
			DurationYears: seq.years,
		})
		current = end
	}
	return periods
}

// SubPeriods делит период на девять поддаш, начиная с его правителя.
// Конец последней поддаши совмещён с концом родителя, чтобы уровни
// оставались стыкованными после округлений.
func SubPeriods(parent models.DashaPeriod) []models.DashaPeriod {
	startIdx := 0
	for i, s := range dashaSequence {
		if s.ruler == parent.Ruler {
			startIdx = i
			break
		}
	}

	subs := make([]models.DashaPeriod, 0, 9)
	current := parent.Start
	for i := 0; i < 9; i++ {
		seq := dashaSequence[(startIdx+i)%9]
		years := parent.DurationYears * seq.years / dashaCycleYears
		end := current.Add(yearsToDuration(years))
		if i == 8 {
			end = parent.End
		}
		subs = append(subs, models.DashaPeriod{
			Ruler:         seq.ruler,
			RulerName:     seq.ruler.String(),
			Start:         current,
			End:           end,
			Level:         parent.Level + 1,
			DurationYears: years,
		})
		current = end
	}
	return subs
}

// ExpandSubPeriods раскрывает вложенные поддаши до заданного уровня.
func ExpandSubPeriods(periods []models.DashaPeriod, levels int) {
	if levels <= 1 {
		return
	}
	for i := range periods {
		subs := SubPeriods(periods[i])
		ExpandSubPeriods(subs, levels-1)
		periods[i].SubPeriods = subs
	}
}
