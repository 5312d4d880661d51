package models

import "time"

// BodyPosition хранит сидерическое положение тела с производной классификацией.
type BodyPosition struct {
	Body          Body      `json:"body"`
	Name          string    `json:"name"`
	Sanskrit      string    `json:"sanskrit_name"`
	Symbol        string    `json:"symbol"`
	Longitude     float64   `json:"longitude"`
	Latitude      float64   `json:"latitude"`
	Speed         float64   `json:"speed"`
	Retrograde    bool      `json:"retrograde"`
	Rashi         Rashi     `json:"rashi"`
	RashiName     string    `json:"rashi_name"`
	DegreeInRashi float64   `json:"degree_in_rashi"`
	Nakshatra     Nakshatra `json:"nakshatra"`
	NakshatraName string    `json:"nakshatra_name"`
	Pada          int       `json:"pada"`
	NakshatraLord string    `json:"nakshatra_lord"`
}

type HouseCusp struct {
	House         int     `json:"house"`
	Longitude     float64 `json:"longitude"`
	Rashi         Rashi   `json:"rashi"`
	RashiName     string  `json:"rashi_name"`
	DegreeInRashi float64 `json:"degree_in_rashi"`
}

// NatalChart хранит неизменяемый результат расчёта карты рождения.
// Схема аянамсы зафиксирована внутри значения.
type NatalChart struct {
	Moment      time.Time `json:"moment_utc"`
	JulianDay   float64   `json:"julian_day"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	TZOffsetMin int       `json:"tz_offset_minutes"`

	Ayanamsa      AyanamsaScheme `json:"ayanamsa"`
	AyanamsaValue float64        `json:"ayanamsa_value"`

	Ascendant          float64   `json:"ascendant"`
	AscendantRashi     Rashi     `json:"ascendant_rashi"`
	AscendantNakshatra Nakshatra `json:"ascendant_nakshatra"`

	Bodies []BodyPosition `json:"bodies"`
	Houses []HouseCusp    `json:"houses"`

	MoonRashi     Rashi     `json:"moon_rashi"`
	MoonNakshatra Nakshatra `json:"moon_nakshatra"`
	SunRashi      Rashi     `json:"sun_rashi"`
}

// MoonLongitude возвращает сидерическую долготу Луны из списка тел.
func (c *NatalChart) MoonLongitude() float64 {
	for _, bp := range c.Bodies {
		if bp.Body == Moon {
			return bp.Longitude
		}
	}
	return 0
}

// DashaPeriod описывает период вимшоттари. Уровень 1 соответствует махадаше.
type DashaPeriod struct {
	Ruler         Body          `json:"ruler_id"`
	RulerName     string        `json:"ruler"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	Level         int           `json:"level"`
	DurationYears float64       `json:"duration_years"`
	SubPeriods    []DashaPeriod `json:"sub_periods,omitempty"`
}

// DivisionalChart хранит отображение тел в знаки для варги D-n.
type DivisionalChart struct {
	Division  int              `json:"division"`
	Name      string           `json:"name"`
	Positions map[string]Rashi `json:"positions"`
}
