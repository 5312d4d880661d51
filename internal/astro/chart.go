package astro

import (
	"time"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
)

// ChartInput задаёт момент и место рождения. Moment несёт смещение
// пояса, TZOffsetMin дублирует его для выдачи.
type ChartInput struct {
	Moment      time.Time
	Latitude    float64
	Longitude   float64
	TZOffsetMin int
	Ayanamsa    models.AyanamsaScheme
}

// CalculateChart строит натальную карту: сидерические положения девяти
// грах, асцендент и дома Плацидуса.
func CalculateChart(eph Ephemeris, in ChartInput) (*models.NatalChart, error) {
	positions, err := eph.Positions(in.Moment, models.ChartBodies(), in.Ayanamsa)
	if err != nil {
		return nil, wrapComputation("chart", err)
	}
	jd := ephemeris.JulianDay(in.Moment)
	ayanamsa := eph.AyanamsaValue(in.Moment, in.Ayanamsa)

	asc, houses, err := placidusHouses(jd, in.Latitude, in.Longitude, ayanamsa)
	if err != nil {
		return nil, err
	}
	ascNak, _ := nakshatraOf(asc)

	chart := &models.NatalChart{
		Moment:             in.Moment.UTC(),
		JulianDay:          jd,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		TZOffsetMin:        in.TZOffsetMin,
		Ayanamsa:           in.Ayanamsa,
		AyanamsaValue:      ayanamsa,
		Ascendant:          asc,
		AscendantRashi:     rashiOf(asc),
		AscendantNakshatra: ascNak,
		Houses:             houses,
		Bodies:             make([]models.BodyPosition, 0, len(positions)),
	}
	for _, p := range positions {
		bp := toBodyPosition(p)
		chart.Bodies = append(chart.Bodies, bp)
		switch p.Body {
		case models.Moon:
			chart.MoonRashi = bp.Rashi
			chart.MoonNakshatra = bp.Nakshatra
		case models.Sun:
			chart.SunRashi = bp.Rashi
		}
	}
	return chart, nil
}

// CurrentPositions возвращает классифицированные положения девяти грах.
func CurrentPositions(eph Ephemeris, t time.Time, scheme models.AyanamsaScheme) ([]models.BodyPosition, error) {
	positions, err := eph.Positions(t, models.ChartBodies(), scheme)
	if err != nil {
		return nil, wrapComputation("positions", err)
	}
	out := make([]models.BodyPosition, 0, len(positions))
	for _, p := range positions {
		out = append(out, toBodyPosition(p))
	}
	return out, nil
}

// toBodyPosition дополняет сырое положение знаком, стоянкой и падой.
func toBodyPosition(p ephemeris.Position) models.BodyPosition {
	rashi := rashiOf(p.Longitude)
	nak, pada := nakshatraOf(p.Longitude)
	return models.BodyPosition{
		Body:          p.Body,
		Name:          p.Body.String(),
		Sanskrit:      p.Body.Sanskrit(),
		Symbol:        p.Body.Symbol(),
		Longitude:     p.Longitude,
		Latitude:      p.Latitude,
		Speed:         p.Speed,
		Retrograde:    p.Retrograde,
		Rashi:         rashi,
		RashiName:     rashi.Name(),
		DegreeInRashi: posModF(p.Longitude, 30),
		Nakshatra:     nak,
		NakshatraName: nak.Name(),
		Pada:          pada,
		NakshatraLord: nak.Ruler().String(),
	}
}
