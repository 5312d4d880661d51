package ephemeris

import (
	"jyotish/internal/models"
)

const j2000 = 2451545.0

// Скорость прецессии, угловые секунды в юлианский год.
const precessionRate = 50.2771

// Базовые значения аянамши на эпоху J2000.0, градусы.
var ayanamsaBase = map[models.AyanamsaScheme]float64{
	models.AyanamsaLahiri:           23.85236,
	models.AyanamsaRaman:            22.40139,
	models.AyanamsaKrishnamurti:     23.75139,
	models.AyanamsaYukteshwar:       22.7667,
	models.AyanamsaTrueChitrapaksha: 23.86061,
}

// Ayanamsa возвращает сдвиг сидерического зодиака от тропического на юлианскую
// дату, градусы. Неизвестная схема считается как Лахири.
func Ayanamsa(jd float64, scheme models.AyanamsaScheme) float64 {
	base, ok := ayanamsaBase[scheme]
	if !ok {
		base = ayanamsaBase[models.AyanamsaLahiri]
	}
	years := (jd - j2000) / 365.25
	return base + precessionRate*years/3600
}
