package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jyotish/internal/ephemeris"
	"jyotish/internal/models"
	"jyotish/internal/repository"
)

// stubEphemeris отдаёт фиксированные долготы и считает обращения,
// чтобы тесты отличали расчёт от попадания в кэш. Мьютекс нужен
// параллельным воркерам поиска мухурты.
type stubEphemeris struct {
	mu             sync.Mutex
	positionCalls  int
	sunEventsCalls int
}

var stubLongitudes = map[models.Body]float64{
	models.Sun:     10,
	models.Moon:    136,
	models.Mars:    200,
	models.Mercury: 30,
	models.Jupiter: 250,
	models.Venus:   50,
	models.Saturn:  310,
	models.Rahu:    170,
	models.Ketu:    350,
}

func (s *stubEphemeris) Position(_ time.Time, body models.Body, _ models.AyanamsaScheme) (ephemeris.Position, error) {
	s.mu.Lock()
	s.positionCalls++
	s.mu.Unlock()
	return ephemeris.Position{Body: body, Longitude: stubLongitudes[body], Speed: 1}, nil
}

func (s *stubEphemeris) Positions(t time.Time, bodies []models.Body, scheme models.AyanamsaScheme) ([]ephemeris.Position, error) {
	out := make([]ephemeris.Position, 0, len(bodies))
	for _, b := range bodies {
		p, err := s.Position(t, b, scheme)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *stubEphemeris) AyanamsaValue(_ time.Time, _ models.AyanamsaScheme) float64 {
	return 24.1
}

func (s *stubEphemeris) SunEvents(date time.Time, _, _ float64, _ int) models.SunTimes {
	s.mu.Lock()
	s.sunEventsCalls++
	s.mu.Unlock()
	return models.SunTimes{
		Sunrise:   date.Add(6 * time.Hour),
		Sunset:    date.Add(18 * time.Hour),
		SolarNoon: date.Add(12 * time.Hour),
	}
}

func (s *stubEphemeris) MoonEvents(date time.Time, _, _ float64, _ int) models.MoonTimes {
	rise := date.Add(20 * time.Hour)
	set := date.Add(8 * time.Hour)
	return models.MoonTimes{Moonrise: &rise, Moonset: &set}
}

// stubPanchangRepo держит архив в памяти.
type stubPanchangRepo struct {
	recs    map[string]*models.PanchangRecord
	upserts int
}

func newStubPanchangRepo() *stubPanchangRepo {
	return &stubPanchangRepo{recs: make(map[string]*models.PanchangRecord)}
}

func (r *stubPanchangRepo) key(locationKey, date, scheme string) string {
	return locationKey + "|" + date + "|" + scheme
}

func (r *stubPanchangRepo) Upsert(_ context.Context, rec *models.PanchangRecord) error {
	r.upserts++
	r.recs[r.key(rec.LocationKey, rec.Date, rec.Scheme)] = rec
	return nil
}

func (r *stubPanchangRepo) GetByKey(_ context.Context, locationKey, date, scheme string) (*models.PanchangRecord, error) {
	if rec, ok := r.recs[r.key(locationKey, date, scheme)]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPanchangRepo) GetByDateRange(_ context.Context, _, _, _, _ string) ([]models.PanchangRecord, error) {
	return nil, nil
}

func (r *stubPanchangRepo) DeleteOld(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *stubPanchangRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.recs)), nil
}

var _ repository.PanchangRepository = (*stubPanchangRepo)(nil)

func istDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.FixedZone("IST", 330*60))
}

func TestPanchangServiceGetDailyComputesAndCaches(t *testing.T) {
	eph := &stubEphemeris{}
	repo := newStubPanchangRepo()
	svc := NewPanchangService(eph, repository.NewMemoryCacheRepository(), repo, time.Hour)

	date := istDate(2024, time.November, 5)
	ctx := context.Background()

	p, err := svc.GetDaily(ctx, date, 28.6139, 77.2090, 330, models.AyanamsaLahiri)
	require.NoError(t, err)

	// Солнце 10, Луна 136: разница 126 градусов даёт одиннадцатую титхи.
	assert.Equal(t, models.Tithi(11), p.Tithi.Number)
	assert.Equal(t, models.Nakshatra(11), p.Nakshatra.Number)
	assert.True(t, p.Date.Equal(date))
	// Вторник: Раху-калам занимает седьмую восьмушку светового дня.
	assert.True(t, p.RahuKalam.Start.Equal(date.Add(15*time.Hour)))
	assert.Equal(t, 2, eph.positionCalls)
	assert.Equal(t, 1, repo.upserts)

	// Повторный запрос обслуживается кэшем без пересчёта.
	p2, err := svc.GetDaily(ctx, date, 28.6139, 77.2090, 330, models.AyanamsaLahiri)
	require.NoError(t, err)
	assert.Equal(t, 2, eph.positionCalls)
	assert.Equal(t, p.Tithi.Number, p2.Tithi.Number)
	assert.True(t, p2.Date.Equal(p.Date))
}

func TestPanchangServiceGetDailyServesFromArchive(t *testing.T) {
	eph := &stubEphemeris{}
	repo := newStubPanchangRepo()
	svc := NewPanchangService(eph, repository.NewMemoryCacheRepository(), repo, time.Hour)

	date := istDate(2024, time.November, 5)
	archived := models.Panchang{
		Date:     date,
		Latitude: 28.6139,
		Tithi:    models.TithiDetail{Number: models.Tithi(7), Name: "Saptami"},
	}
	payload, err := json.Marshal(archived)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), &models.PanchangRecord{
		LocationKey: LocationKey(28.6139, 77.2090),
		Date:        "2024-11-05",
		Scheme:      "lahiri",
		Payload:     datatypes.JSON(payload),
	}))

	p, err := svc.GetDaily(context.Background(), date, 28.6139, 77.2090, 330, models.AyanamsaLahiri)

	require.NoError(t, err)
	assert.Equal(t, models.Tithi(7), p.Tithi.Number)
	// Архивная запись избавляет от пересчёта.
	assert.Equal(t, 0, eph.positionCalls)
}

func TestPanchangServiceGetMonthlyCaches(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewPanchangService(eph, repository.NewMemoryCacheRepository(), nil, time.Hour)

	ctx := context.Background()
	days, err := svc.GetMonthly(ctx, 2024, time.November, 28.6139, 77.2090, 330, models.AyanamsaLahiri)
	require.NoError(t, err)
	require.Len(t, days, 30)

	calls := eph.positionCalls
	days2, err := svc.GetMonthly(ctx, 2024, time.November, 28.6139, 77.2090, 330, models.AyanamsaLahiri)
	require.NoError(t, err)
	assert.Len(t, days2, 30)
	assert.Equal(t, calls, eph.positionCalls)
}

func TestPanchangServiceGetChoghadiya(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewPanchangService(eph, repository.NewMemoryCacheRepository(), nil, time.Hour)

	date := istDate(2024, time.November, 5)
	ctx := context.Background()

	day, night, err := svc.GetChoghadiya(ctx, date, 28.6139, 77.2090, 330)
	require.NoError(t, err)
	require.Len(t, day, 8)
	require.Len(t, night, 8)
	assert.True(t, day[0].Start.Equal(date.Add(6*time.Hour)))
	assert.True(t, night[0].Start.Equal(date.Add(18*time.Hour)))

	calls := eph.sunEventsCalls
	_, _, err = svc.GetChoghadiya(ctx, date, 28.6139, 77.2090, 330)
	require.NoError(t, err)
	assert.Equal(t, calls, eph.sunEventsCalls)
}

func TestPanchangServiceGetHora(t *testing.T) {
	eph := &stubEphemeris{}
	svc := NewPanchangService(eph, repository.NewMemoryCacheRepository(), nil, time.Hour)

	date := istDate(2024, time.November, 5)

	periods, err := svc.GetHora(context.Background(), date, 28.6139, 77.2090, 330)
	require.NoError(t, err)
	require.Len(t, periods, 24)
	// Первый час вторника принадлежит Марсу.
	assert.Equal(t, "Mars", periods[0].Lord)
	assert.True(t, periods[0].Start.Equal(date.Add(6*time.Hour)))
}
