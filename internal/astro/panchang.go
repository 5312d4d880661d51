package astro

import (
	"fmt"
	"math"
	"time"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
)

// Средние суточные скорости для оценки времени окончания элементов,
// градусов в сутки.
const (
	tithiRate     = 12.2
	nakshatraRate = 13.2
	yogaRate      = 14.2
)

// Номера восьмых долей светового дня по дню недели, воскресенье = 0.
var (
	rahuKalamSegments  = [7]int{8, 2, 7, 5, 6, 4, 3}
	yamagandamSegments = [7]int{5, 4, 3, 2, 1, 7, 6}
	gulikaSegments     = [7]int{7, 6, 5, 4, 3, 2, 1}
)

// CalculatePanchang считает пять элементов календаря на местную дату.
// Элементы фиксируются на момент восхода Солнца.
func CalculatePanchang(eph Ephemeris, date time.Time, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) (*models.Panchang, error) {
	if err := ephemeris.CheckEpoch(date); err != nil {
		return nil, wrapComputation("panchang", err)
	}

	loc := time.FixedZone("local", tzOffsetMin*60)
	local := date.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	sun := eph.SunEvents(day, lat, lon, tzOffsetMin)
	moon := eph.MoonEvents(day, lat, lon, tzOffsetMin)
	sunrise := sun.Sunrise

	sunPos, err := eph.Position(sunrise, models.Sun, scheme)
	if err != nil {
		return nil, wrapComputation("panchang", err)
	}
	moonPos, err := eph.Position(sunrise, models.Moon, scheme)
	if err != nil {
		return nil, wrapComputation("panchang", err)
	}

	p := &models.Panchang{
		Date:        day,
		Latitude:    lat,
		Longitude:   lon,
		TZOffsetMin: tzOffsetMin,
		Ayanamsa:    scheme,
		Sun:         sun,
		Moon:        moon,
	}

	p.Tithi = tithiAt(sunPos.Longitude, moonPos.Longitude, sunrise)
	p.Nakshatra = nakshatraAt(moonPos.Longitude, sunrise)
	p.Yoga = yogaAt(sunPos.Longitude, moonPos.Longitude, sunrise)
	p.Karana = karanaAt(p.Tithi)
	p.Vaara = vaaraOf(day)

	p.RahuKalam = daySegment("Rahu Kalam", rahuKalamSegments, sun, day)
	p.Yamagandam = daySegment("Yamagandam", yamagandamSegments, sun, day)
	p.GulikaKalam = daySegment("Gulika Kalam", gulikaSegments, sun, day)

	p.Paksha = p.Tithi.Paksha
	p.Masa = models.MasaFromMoonRashi(rashiOf(moonPos.Longitude))
	p.Samvatsara = models.SamvatsaraForYear(day.Year())

	return p, nil
}

// MonthlyPanchang строит сводку по всем дням календарного месяца.
func MonthlyPanchang(eph Ephemeris, year int, month time.Month, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) ([]models.PanchangDay, error) {
	loc := time.FixedZone("local", tzOffsetMin*60)
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	days := make([]models.PanchangDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		p, err := CalculatePanchang(eph, d, lat, lon, tzOffsetMin, scheme)
		if err != nil {
			return nil, fmt.Errorf("panchang for %s: %w", d.Format("2006-01-02"), err)
		}
		days = append(days, models.PanchangDay{
			Date:      p.Date,
			Tithi:     p.Tithi.Name,
			Paksha:    p.Paksha,
			Nakshatra: p.Nakshatra.Name,
			Yoga:      p.Yoga.Name,
			Karana:    p.Karana.Name,
			Vaara:     p.Vaara.Name,
			Sunrise:   p.Sun.Sunrise,
			Sunset:    p.Sun.Sunset,
		})
	}
	return days, nil
}

func tithiAt(sunLon, moonLon float64, ref time.Time) models.TithiDetail {
	diff := posModF(moonLon-sunLon, 360)
	num := int(diff/12) + 1
	if num > 30 {
		num = 30
	}
	elapsed := math.Mod(diff, 12)
	t := models.Tithi(num)
	return models.TithiDetail{
		Number:         t,
		Name:           t.Name(),
		Paksha:         t.Paksha(),
		PercentElapsed: elapsed / 12 * 100,
		EndTime:        ref.Add(durationFromDays((12 - elapsed) / tithiRate)),
	}
}

func nakshatraAt(moonLon float64, ref time.Time) models.NakshatraDetail {
	nak, pada := nakshatraOf(moonLon)
	remaining := nakshatraSpan - math.Mod(posModF(moonLon, 360), nakshatraSpan)
	return models.NakshatraDetail{
		Number:  nak,
		Name:    nak.Name(),
		Ruler:   nak.Ruler().String(),
		Pada:    pada,
		EndTime: ref.Add(durationFromDays(remaining / nakshatraRate)),
	}
}

func yogaAt(sunLon, moonLon float64, ref time.Time) models.YogaDetail {
	total := posModF(sunLon+moonLon, 360)
	idx := int(total / nakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	y := models.Yoga(idx + 1)
	return models.YogaDetail{
		Number:  y,
		Name:    y.Name(),
		Nature:  y.Nature(),
		EndTime: ref.Add(durationFromDays((nakshatraSpan - math.Mod(total, nakshatraSpan)) / yogaRate)),
	}
}

// karanaAt выводит карану из номера титхи и доли её прохождения.
// Слоты 1 и 58..60 заняты фиксированными каранами, остальные
// циклически обходят семь подвижных.
func karanaAt(t models.TithiDetail) models.KaranaDetail {
	slot := (int(t.Number)-1)*2 + 1
	if t.PercentElapsed >= 50 {
		slot++
	}
	var k models.KaranaType
	switch {
	case slot <= 1:
		k = 11
	case slot >= 58:
		k = models.KaranaType(8 + slot - 58)
	default:
		k = models.KaranaType((slot-2)%7 + 1)
	}
	return models.KaranaDetail{
		Slot:   slot,
		Number: k,
		Name:   k.Name(),
		Nature: k.Nature(),
	}
}

func vaaraOf(day time.Time) models.VaaraDetail {
	v := models.Vaara(int(day.Weekday()))
	return models.VaaraDetail{
		Number: v,
		Name:   v.Name(),
		Lord:   v.Lord().String(),
	}
}

func daySegment(name string, order [7]int, sun models.SunTimes, day time.Time) models.InauspiciousPeriod {
	seg := order[int(day.Weekday())]
	length := sun.DayLength() / 8
	start := sun.Sunrise.Add(time.Duration(seg-1) * length)
	return models.InauspiciousPeriod{Name: name, Start: start, End: start.Add(length)}
}

func durationFromDays(d float64) time.Duration {
	return time.Duration(d * 24 * float64(time.Hour))
}

// Порядок чогхадий светового дня и ночи; стартовый индекс равен
// номеру дня недели.
var (
	choghadiyaDaySeq   = [8]string{"Udveg", "Chal", "Labh", "Amrit", "Kaal", "Shubh", "Rog", "Udveg"}
	choghadiyaNightSeq = [8]string{"Shubh", "Amrit", "Chal", "Rog", "Kaal", "Labh", "Udveg", "Shubh"}
)

var choghadiyaNature = map[string]struct{ nature, description string }{
	"Amrit": {"Excellent", "Best for all auspicious work"},
	"Shubh": {"Good", "Auspicious for good deeds"},
	"Labh":  {"Good", "Beneficial for gains and profits"},
	"Chal":  {"Average", "Suitable for travel"},
	"Rog":   {"Inauspicious", "Avoid important activities"},
	"Kaal":  {"Inauspicious", "Avoid new beginnings"},
	"Udveg": {"Inauspicious", "Avoid starting new work"},
}

// Choghadiya делит световой день на восемь сегментов от восхода до
// заката и ночь на восемь полуторачасовых от заката.
func Choghadiya(eph Ephemeris, date time.Time, lat, lon float64, tzOffsetMin int) (dayPeriods, nightPeriods []models.ChoghadiyaPeriod, err error) {
	if err := ephemeris.CheckEpoch(date); err != nil {
		return nil, nil, wrapComputation("choghadiya", err)
	}

	loc := time.FixedZone("local", tzOffsetMin*60)
	local := date.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	sun := eph.SunEvents(day, lat, lon, tzOffsetMin)
	weekday := int(day.Weekday())

	dayLen := sun.DayLength() / 8
	for i := 0; i < 8; i++ {
		start := sun.Sunrise.Add(time.Duration(i) * dayLen)
		dayPeriods = append(dayPeriods, choghadiyaPeriod(choghadiyaDaySeq[(weekday+i)%8], start, start.Add(dayLen)))
	}

	nightLen := 12 * time.Hour / 8
	for i := 0; i < 8; i++ {
		start := sun.Sunset.Add(time.Duration(i) * nightLen)
		nightPeriods = append(nightPeriods, choghadiyaPeriod(choghadiyaNightSeq[(weekday+i)%8], start, start.Add(nightLen)))
	}
	return dayPeriods, nightPeriods, nil
}

func choghadiyaPeriod(name string, start, end time.Time) models.ChoghadiyaPeriod {
	n := choghadiyaNature[name]
	return models.ChoghadiyaPeriod{
		Name:        name,
		Nature:      n.nature,
		Description: n.description,
		Start:       start,
		End:         end,
	}
}

// Последовательность владык планетарных часов (порядок Халдеев,
// свёрнутый к недельному шагу).
var horaLords = [7]models.Body{
	models.Sun, models.Venus, models.Mercury, models.Moon,
	models.Saturn, models.Jupiter, models.Mars,
}

var horaSuitability = map[models.Body]string{
	models.Sun:     "Government work, authority, health matters",
	models.Moon:    "Travel, public dealings, water-related activities",
	models.Mars:    "Surgery, conflict resolution, property matters",
	models.Mercury: "Business, communication, education, writing",
	models.Jupiter: "Religious activities, teaching, legal matters",
	models.Venus:   "Marriage, arts, entertainment, luxury purchases",
	models.Saturn:  "Agriculture, construction, mining, charity",
}

// Hora строит 24 планетарных часа: двенадцать долей светового дня от
// восхода и двенадцать часовых от заката. Первый час принадлежит
// владыке дня недели.
func Hora(eph Ephemeris, date time.Time, lat, lon float64, tzOffsetMin int) ([]models.HoraPeriod, error) {
	if err := ephemeris.CheckEpoch(date); err != nil {
		return nil, wrapComputation("hora", err)
	}

	loc := time.FixedZone("local", tzOffsetMin*60)
	local := date.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	sun := eph.SunEvents(day, lat, lon, tzOffsetMin)
	lord := models.Vaara(int(day.Weekday())).Lord()
	start := 0
	for i, b := range horaLords {
		if b == lord {
			start = i
			break
		}
	}

	periods := make([]models.HoraPeriod, 0, 24)
	dayLen := sun.DayLength() / 12
	for i := 0; i < 12; i++ {
		b := horaLords[(start+i)%7]
		s := sun.Sunrise.Add(time.Duration(i) * dayLen)
		periods = append(periods, models.HoraPeriod{
			Number:      i + 1,
			Lord:        b.String(),
			Start:       s,
			End:         s.Add(dayLen),
			Suitability: horaSuitability[b],
		})
	}
	for i := 0; i < 12; i++ {
		b := horaLords[(start+12+i)%7]
		s := sun.Sunset.Add(time.Duration(i) * time.Hour)
		periods = append(periods, models.HoraPeriod{
			Number:      13 + i,
			Lord:        b.String(),
			Start:       s,
			End:         s.Add(time.Hour),
			Suitability: horaSuitability[b],
		})
	}
	return periods, nil
}
