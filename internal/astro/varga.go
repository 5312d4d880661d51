package astro

import (
	"fmt"

	"jyotish/internal/models"
)

var vargaNames = map[int]string{
	1:  "Rashi",
	2:  "Hora",
	3:  "Drekkana",
	4:  "Chaturthamsa",
	7:  "Saptamsa",
	9:  "Navamsa",
	10: "Dasamsa",
	12: "Dwadasamsa",
	16: "Shodasamsa",
	20: "Vimsamsa",
	24: "Chaturvimsamsa",
	27: "Nakshatramsa",
	30: "Trimsamsa",
	40: "Khavedamsa",
	45: "Akshavedamsa",
	60: "Shashtiamsa",
}

// vargaSign возвращает знак варги D-n для сидерической долготы.
// Навамса привязана к стихии, дашамша и саптамша различают чётные
// и нечётные знаки, прочие деления отсчитываются от самого знака.
func vargaSign(lon float64, division int) models.Rashi {
	l := posModF(lon, 360)
	sign0 := int(l / 30)
	degIn := l - float64(sign0)*30
	part := int(degIn / (30.0 / float64(division)))
	if part >= division {
		part = division - 1
	}

	start := sign0
	switch division {
	case 9:
		start = [4]int{0, 9, 6, 3}[sign0%4]
	case 10:
		if sign0%2 != 0 {
			start = (sign0 + 8) % 12
		}
	case 7:
		if sign0%2 != 0 {
			start = (sign0 + 6) % 12
		}
	}
	return models.Rashi((start+part)%12 + 1)
}

// DivisionalPositions строит варгу D-n по натальной карте,
// включая положение асцендента.
func DivisionalPositions(chart *models.NatalChart, division int) (*models.DivisionalChart, error) {
	if division < 1 || division > 60 {
		return nil, fmt.Errorf("division must be within 1..60, got %d", division)
	}
	name, ok := vargaNames[division]
	if !ok {
		name = fmt.Sprintf("D%d", division)
	}
	positions := make(map[string]models.Rashi, len(chart.Bodies)+1)
	for _, bp := range chart.Bodies {
		positions[bp.Name] = vargaSign(bp.Longitude, division)
	}
	positions["Ascendant"] = vargaSign(chart.Ascendant, division)
	return &models.DivisionalChart{
		Division:  division,
		Name:      name,
		Positions: positions,
	}, nil
}
