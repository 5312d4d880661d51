package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/unit"

	"jyotish/internal/models"
)

// Астрономическая единица, километры.
const auKM = 149597870.7

// Световое время, сутки на одну а.е.
const lightTimeDays = 0.0057755183

// Полушаг центральной разности для скоростей, сутки.
const speedStep = 0.5

// Position описывает видимое сидерическое положение тела.
// Долгота и широта в градусах, расстояние в а.е. (0 для узлов),
// скорость в градусах за сутки.
type Position struct {
	Body       models.Body `json:"body"`
	Longitude  float64     `json:"longitude"`
	Latitude   float64     `json:"latitude"`
	Distance   float64     `json:"distance_au"`
	Speed      float64     `json:"speed"`
	Retrograde bool        `json:"retrograde"`
}

// Engine считает геоцентрические видимые положения девяти грах:
// Солнце и планеты по рядам VSOP87, Луна по усечённой теории ELP,
// узлы по среднему наклонению лунной орбиты.
type Engine struct {
	earth   *pp.V87Planet
	planets map[models.Body]*pp.V87Planet
}

// New загружает ряды VSOP87 из каталога dataPath.
func New(dataPath string) (*Engine, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, dataPath)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: load earth series: %w", err)
	}
	numbers := map[models.Body]int{
		models.Mercury: pp.Mercury,
		models.Venus:   pp.Venus,
		models.Mars:    pp.Mars,
		models.Jupiter: pp.Jupiter,
		models.Saturn:  pp.Saturn,
	}
	planets := make(map[models.Body]*pp.V87Planet, len(numbers))
	for body, n := range numbers {
		p, err := pp.LoadPlanetPath(n, dataPath)
		if err != nil {
			return nil, fmt.Errorf("ephemeris: load %s series: %w", body, err)
		}
		planets[body] = p
	}
	return &Engine{earth: earth, planets: planets}, nil
}

// Position возвращает сидерическое положение тела на момент времени.
func (e *Engine) Position(t time.Time, body models.Body, scheme models.AyanamsaScheme) (Position, error) {
	if err := CheckEpoch(t); err != nil {
		return Position{}, err
	}
	jde := JulianDay(t)
	lon, lat, dist, err := e.tropical(jde, body)
	if err != nil {
		return Position{}, err
	}
	prev, _, _, err := e.tropical(jde-speedStep, body)
	if err != nil {
		return Position{}, err
	}
	next, _, _, err := e.tropical(jde+speedStep, body)
	if err != nil {
		return Position{}, err
	}
	sidPrev := unit.PMod(prev-Ayanamsa(jde-speedStep, scheme), 360)
	sidNext := unit.PMod(next-Ayanamsa(jde+speedStep, scheme), 360)
	speed := wrapDelta(sidNext-sidPrev) / (2 * speedStep)
	pos := Position{
		Body:       body,
		Longitude:  unit.PMod(lon-Ayanamsa(jde, scheme), 360),
		Latitude:   lat,
		Distance:   dist,
		Speed:      speed,
		Retrograde: speed < 0,
	}
	// Кету отражает движение Раху и всегда помечается ретроградным.
	if body == models.Ketu {
		pos.Speed = -pos.Speed
		pos.Retrograde = true
	}
	return pos, nil
}

// Positions возвращает положения перечисленных тел на один момент.
func (e *Engine) Positions(t time.Time, bodies []models.Body, scheme models.AyanamsaScheme) ([]Position, error) {
	out := make([]Position, 0, len(bodies))
	for _, b := range bodies {
		p, err := e.Position(t, b, scheme)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// AyanamsaValue возвращает аянамшу в градусах на момент времени.
func (e *Engine) AyanamsaValue(t time.Time, scheme models.AyanamsaScheme) float64 {
	return Ayanamsa(JulianDay(t), scheme)
}

// TropicalLongitude возвращает видимую тропическую долготу тела, градусы.
func (e *Engine) TropicalLongitude(t time.Time, body models.Body) (float64, error) {
	lon, _, _, err := e.tropical(JulianDay(t), body)
	return lon, err
}

// tropical возвращает видимые геоцентрические эклиптические координаты даты.
func (e *Engine) tropical(jde float64, body models.Body) (lon, lat, dist float64, err error) {
	switch body {
	case models.Sun:
		return e.sunPosition(jde)
	case models.Moon:
		return moonPosition(jde)
	case models.Rahu:
		return meanNode(jde), 0, 0, nil
	case models.Ketu:
		return unit.PMod(meanNode(jde)+180, 360), 0, 0, nil
	default:
		p, ok := e.planets[body]
		if !ok {
			return 0, 0, 0, fmt.Errorf("ephemeris: no series for %s", body)
		}
		return e.planetPosition(jde, p)
	}
}

// sunPosition считает Солнце через гелиоцентрическую Землю с поправками
// на нутацию и аберрацию.
func (e *Engine) sunPosition(jde float64) (lon, lat, dist float64, err error) {
	l0, b0, r0 := e.earth.Position(jde)
	lon = l0.Deg() + 180
	lat = -b0.Deg()
	dp, _ := nutation.Nutation(jde)
	lon += dp.Deg()
	lon -= 20.4898 / 3600 / r0
	return unit.PMod(lon, 360), lat, r0, nil
}

func moonPosition(jde float64) (lon, lat, dist float64, err error) {
	l, b, d := moonposition.Position(jde)
	dp, _ := nutation.Nutation(jde)
	return unit.PMod(l.Deg()+dp.Deg(), 360), b.Deg(), d / auKM, nil
}

// planetPosition переводит гелиоцентрические координаты в геоцентрические
// с одной итерацией по световому времени и поправкой на нутацию.
func (e *Engine) planetPosition(jde float64, p *pp.V87Planet) (lon, lat, dist float64, err error) {
	l0, b0, r0 := e.earth.Position(jde)
	x0 := r0 * math.Cos(b0.Rad()) * math.Cos(l0.Rad())
	y0 := r0 * math.Cos(b0.Rad()) * math.Sin(l0.Rad())
	z0 := r0 * math.Sin(b0.Rad())

	x, y, z := helioXYZ(p, jde)
	dx, dy, dz := x-x0, y-y0, z-z0
	delta := math.Sqrt(dx*dx + dy*dy + dz*dz)

	x, y, z = helioXYZ(p, jde-lightTimeDays*delta)
	dx, dy, dz = x-x0, y-y0, z-z0
	delta = math.Sqrt(dx*dx + dy*dy + dz*dz)

	lon = math.Atan2(dy, dx) * 180 / math.Pi
	lat = math.Atan2(dz, math.Sqrt(dx*dx+dy*dy)) * 180 / math.Pi
	dp, _ := nutation.Nutation(jde)
	lon += dp.Deg()
	return unit.PMod(lon, 360), lat, delta, nil
}

func helioXYZ(p *pp.V87Planet, jde float64) (x, y, z float64) {
	l, b, r := p.Position(jde)
	x = r * math.Cos(b.Rad()) * math.Cos(l.Rad())
	y = r * math.Cos(b.Rad()) * math.Sin(l.Rad())
	z = r * math.Sin(b.Rad())
	return x, y, z
}

// meanNode возвращает среднюю долготу восходящего узла лунной орбиты, градусы.
func meanNode(jde float64) float64 {
	t := base.J2000Century(jde)
	omega := base.Horner(t, 125.0445479, -1934.1362891, 0.0020754,
		1.0/467441, -1.0/60616000)
	return unit.PMod(omega, 360)
}

// wrapDelta приводит разность долгот к диапазону [-180, 180).
func wrapDelta(d float64) float64 {
	return unit.PMod(d+180, 360) - 180
}
