package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"jyotish/internal/astro"
	"jyotish/internal/models"
	"jyotish/internal/repository"
)

const defaultPanchangTTL = 6 * time.Hour

// LocationKey нормализует координаты до четырёх знаков после запятой.
// Один и тот же ключ используют кэш, архив и воркер прогрева.
func LocationKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f:%.4f", lat, lon)
}

// PanchangService считает пять элементов календаря и связанные с ними
// периоды. Результаты кэшируются и складываются в постгрес-архив.
type PanchangService interface {
	GetDaily(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) (*models.Panchang, error)
	GetMonthly(ctx context.Context, year int, month time.Month, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) ([]models.PanchangDay, error)
	GetChoghadiya(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) ([]models.ChoghadiyaPeriod, []models.ChoghadiyaPeriod, error)
	GetHora(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) ([]models.HoraPeriod, error)
	Warm(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) error
}

type panchangService struct {
	eph          astro.Ephemeris
	cacheRepo    repository.CacheRepository
	panchangRepo repository.PanchangRepository
	cacheTTL     time.Duration
}

// NewPanchangService собирает сервис. Архивный репозиторий не обязателен:
// без него сервис работает только через кэш.
func NewPanchangService(eph astro.Ephemeris, cacheRepo repository.CacheRepository, panchangRepo repository.PanchangRepository, cacheTTL time.Duration) PanchangService {
	if cacheTTL <= 0 {
		cacheTTL = defaultPanchangTTL
	}
	return &panchangService{
		eph:          eph,
		cacheRepo:    cacheRepo,
		panchangRepo: panchangRepo,
		cacheTTL:     cacheTTL,
	}
}

func (s *panchangService) GetDaily(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) (*models.Panchang, error) {
	dateStr := date.Format("2006-01-02")
	locationKey := LocationKey(lat, lon)
	cacheKey := fmt.Sprintf("panchang:%s:%s:%s", locationKey, dateStr, scheme)

	// Пробуем получить из кэша
	var cached models.Panchang
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && !cached.Date.IsZero() {
		return &cached, nil
	}

	// Кэш пуст: поднимаем из архива, если считали раньше
	if p := s.fromArchive(ctx, locationKey, dateStr, scheme); p != nil {
		s.cacheResult(ctx, cacheKey, p)
		return p, nil
	}

	p, err := astro.CalculatePanchang(s.eph, date, lat, lon, tzOffsetMin, scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate panchang: %w", err)
	}
	if p.Sun.Estimated {
		log.Printf("Sun events for %s on %s estimated: polar latitude", locationKey, dateStr)
	}

	s.cacheResult(ctx, cacheKey, p)
	s.archive(ctx, p)

	return p, nil
}

func (s *panchangService) GetMonthly(ctx context.Context, year int, month time.Month, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) ([]models.PanchangDay, error) {
	cacheKey := fmt.Sprintf("panchang:monthly:%s:%d-%02d:%s", LocationKey(lat, lon), year, int(month), scheme)

	var cached []models.PanchangDay
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	days, err := astro.MonthlyPanchang(s.eph, year, month, lat, lon, tzOffsetMin, scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate monthly panchang: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, days, s.cacheTTL); err != nil {
		log.Printf("Failed to cache monthly panchang: %v", err)
	}

	return days, nil
}

// choghadiyaBundle хранит дневные и ночные сегменты одной записью кэша.
type choghadiyaBundle struct {
	Day   []models.ChoghadiyaPeriod `json:"day"`
	Night []models.ChoghadiyaPeriod `json:"night"`
}

func (s *panchangService) GetChoghadiya(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) ([]models.ChoghadiyaPeriod, []models.ChoghadiyaPeriod, error) {
	cacheKey := fmt.Sprintf("choghadiya:%s:%s", LocationKey(lat, lon), date.Format("2006-01-02"))

	var cached choghadiyaBundle
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached.Day) > 0 {
		return cached.Day, cached.Night, nil
	}

	day, night, err := astro.Choghadiya(s.eph, date, lat, lon, tzOffsetMin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to calculate choghadiya: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, choghadiyaBundle{Day: day, Night: night}, s.cacheTTL); err != nil {
		log.Printf("Failed to cache choghadiya: %v", err)
	}

	return day, night, nil
}

func (s *panchangService) GetHora(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) ([]models.HoraPeriod, error) {
	cacheKey := fmt.Sprintf("hora:%s:%s", LocationKey(lat, lon), date.Format("2006-01-02"))

	var cached []models.HoraPeriod
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	periods, err := astro.Hora(s.eph, date, lat, lon, tzOffsetMin)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate hora: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, periods, s.cacheTTL); err != nil {
		log.Printf("Failed to cache hora: %v", err)
	}

	return periods, nil
}

// Warm прогревает суточный кэш, его зовёт фоновый воркер.
func (s *panchangService) Warm(ctx context.Context, date time.Time, lat, lon float64, tzOffsetMin int) error {
	_, err := s.GetDaily(ctx, date, lat, lon, tzOffsetMin, models.AyanamsaLahiri)
	return err
}

func (s *panchangService) cacheResult(ctx context.Context, cacheKey string, p *models.Panchang) {
	if err := s.cacheRepo.SetJSON(ctx, cacheKey, p, s.cacheTTL); err != nil {
		log.Printf("Failed to cache panchang: %v", err)
	}
}

// fromArchive достаёт ранее рассчитанный панчанг из постгреса.
// Любой сбой трактуется как промах.
func (s *panchangService) fromArchive(ctx context.Context, locationKey, date string, scheme models.AyanamsaScheme) *models.Panchang {
	if s.panchangRepo == nil {
		return nil
	}
	rec, err := s.panchangRepo.GetByKey(ctx, locationKey, date, string(scheme))
	if err != nil {
		return nil
	}
	var p models.Panchang
	if err := json.Unmarshal(rec.Payload, &p); err != nil {
		log.Printf("Failed to decode archived panchang %s/%s: %v", locationKey, date, err)
		return nil
	}
	return &p
}

// archive пишет результат в постгрес: сбой архива не ломает выдачу.
func (s *panchangService) archive(ctx context.Context, p *models.Panchang) {
	if s.panchangRepo == nil {
		return
	}
	payload, err := json.Marshal(p)
	if err != nil {
		log.Printf("Failed to marshal panchang for archive: %v", err)
		return
	}
	rec := &models.PanchangRecord{
		LocationKey: LocationKey(p.Latitude, p.Longitude),
		Date:        p.Date.Format("2006-01-02"),
		Scheme:      string(p.Ayanamsa),
		Payload:     datatypes.JSON(payload),
		ComputedAt:  time.Now().UTC(),
	}
	if err := s.panchangRepo.Upsert(ctx, rec); err != nil {
		log.Printf("Failed to archive panchang: %v", err)
	}
}
