package astro

import (
	"math"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
)

const deg = math.Pi / 180

// ascendantMC возвращает тропические долготы асцендента и середины неба
// для прямого восхождения меридиана ramc, наклона eps и широты lat.
func ascendantMC(ramc, eps, lat float64) (asc, mc float64) {
	sinT := math.Sin(ramc * deg)
	cosT := math.Cos(ramc * deg)
	mc = posModF(math.Atan2(sinT, cosT*math.Cos(eps*deg))/deg, 360)

	den := -(sinT*math.Cos(eps*deg) + math.Tan(lat*deg)*math.Sin(eps*deg))
	asc = posModF(math.Atan2(cosT, den)/deg, 360)

	// Асцендент лежит в восточной полусфере от меридиана.
	if d := posModF(asc-mc, 360); d == 0 || d >= 180 {
		asc = posModF(asc+180, 360)
	}
	return asc, mc
}

// placidusCusp итеративно уточняет долготу промежуточного куспида.
// fraction задаёт долю полудуги, night выбирает ночную полудугу
// от противоположной точки меридиана.
func placidusCusp(ramc, eps, lat, offset, fraction float64, night bool) (float64, error) {
	lambdaOf := func(alpha float64) float64 {
		return posModF(math.Atan2(math.Sin(alpha*deg), math.Cos(alpha*deg)*math.Cos(eps*deg))/deg, 360)
	}
	alpha := ramc + offset
	for i := 0; i < 30; i++ {
		lam := lambdaOf(alpha)
		dec := math.Asin(math.Sin(eps*deg) * math.Sin(lam*deg))
		arg := math.Tan(lat*deg) * math.Tan(dec)
		if arg < -1 || arg > 1 {
			return 0, &ComputationError{Op: "houses", Reason: "placidus cusps undefined at this latitude"}
		}
		ad := math.Asin(arg) / deg
		if night {
			alpha = ramc + 180 - fraction*(90-ad)
		} else {
			alpha = ramc + fraction*(90+ad)
		}
	}
	return lambdaOf(alpha), nil
}

// placidusHouses считает сидерический асцендент и 12 куспидов Плацидуса.
func placidusHouses(jd, lat, lon, ayanamsa float64) (float64, []models.HouseCusp, error) {
	ramc := ephemeris.LocalSiderealTime(jd, lon)
	eps := ephemeris.TrueObliquity(jd)

	ascTrop, mcTrop := ascendantMC(ramc, eps, lat)

	arms := []struct {
		house    int
		offset   float64
		fraction float64
		night    bool
	}{
		{house: 11, offset: 30, fraction: 1.0 / 3},
		{house: 12, offset: 60, fraction: 2.0 / 3},
		{house: 2, offset: 120, fraction: 2.0 / 3, night: true},
		{house: 3, offset: 150, fraction: 1.0 / 3, night: true},
	}
	trop := map[int]float64{1: ascTrop, 10: mcTrop}
	for _, a := range arms {
		lam, err := placidusCusp(ramc, eps, lat, a.offset, a.fraction, a.night)
		if err != nil {
			return 0, nil, err
		}
		trop[a.house] = lam
	}
	for _, pair := range [][2]int{{1, 7}, {2, 8}, {3, 9}, {10, 4}, {11, 5}, {12, 6}} {
		trop[pair[1]] = posModF(trop[pair[0]]+180, 360)
	}

	cusps := make([]models.HouseCusp, 0, 12)
	for h := 1; h <= 12; h++ {
		sid := posModF(trop[h]-ayanamsa, 360)
		r := rashiOf(sid)
		cusps = append(cusps, models.HouseCusp{
			House:         h,
			Longitude:     sid,
			Rashi:         r,
			RashiName:     r.Name(),
			DegreeInRashi: posModF(sid, 30),
		})
	}
	return posModF(ascTrop-ayanamsa, 360), cusps, nil
}
