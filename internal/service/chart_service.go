package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"jyotish/internal/astro"
	"jyotish/internal/models"
	"jyotish/internal/repository"
)

const (
	defaultChartTTL          = 24 * time.Hour
	defaultDashaHorizonYears = 120.0
	maxDashaLevels           = 3
)

// ChartBundle объединяет натальную карту с запрошенными дробными картами.
type ChartBundle struct {
	Chart      *models.NatalChart       `json:"chart"`
	Divisional []models.DivisionalChart `json:"divisional_charts,omitempty"`
}

// ChartService строит натальные карты, варги и таймлайн Вимшоттари.
type ChartService interface {
	GetChart(ctx context.Context, in astro.ChartInput, divisions []int) (*ChartBundle, error)
	GetDivisional(ctx context.Context, in astro.ChartInput, division int) (*models.DivisionalChart, error)
	GetDasha(ctx context.Context, in astro.ChartInput, levels int, horizonYears float64) ([]models.DashaPeriod, error)
}

type chartService struct {
	eph       astro.Ephemeris
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
}

func NewChartService(eph astro.Ephemeris, cacheRepo repository.CacheRepository, cacheTTL time.Duration) ChartService {
	if cacheTTL <= 0 {
		cacheTTL = defaultChartTTL
	}
	return &chartService{
		eph:       eph,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
	}
}

// chartMomentKey сводит вход к ключу кэша с точностью до минуты.
func chartMomentKey(in astro.ChartInput) string {
	return fmt.Sprintf("%s:%s:%s",
		in.Moment.UTC().Truncate(time.Minute).Format("2006-01-02T15:04"),
		LocationKey(in.Latitude, in.Longitude),
		in.Ayanamsa)
}

func (s *chartService) GetChart(ctx context.Context, in astro.ChartInput, divisions []int) (*ChartBundle, error) {
	if len(divisions) == 0 {
		divisions = []int{1, 9} // раши и навамша
	}
	cacheKey := fmt.Sprintf("chart:%s:%v", chartMomentKey(in), divisions)

	// Пробуем получить из кэша
	var cached ChartBundle
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Chart != nil {
		return &cached, nil
	}

	chart, err := astro.CalculateChart(s.eph, in)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart: %w", err)
	}

	bundle := &ChartBundle{Chart: chart}
	for _, d := range divisions {
		dc, err := astro.DivisionalPositions(chart, d)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate divisional chart: %w", err)
		}
		bundle.Divisional = append(bundle.Divisional, *dc)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, bundle, s.cacheTTL); err != nil {
		log.Printf("Failed to cache chart: %v", err)
	}

	return bundle, nil
}

func (s *chartService) GetDivisional(ctx context.Context, in astro.ChartInput, division int) (*models.DivisionalChart, error) {
	cacheKey := fmt.Sprintf("varga:%s:D%d", chartMomentKey(in), division)

	var cached models.DivisionalChart
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Division != 0 {
		return &cached, nil
	}

	chart, err := astro.CalculateChart(s.eph, in)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart: %w", err)
	}
	dc, err := astro.DivisionalPositions(chart, division)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate divisional chart: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, dc, s.cacheTTL); err != nil {
		log.Printf("Failed to cache divisional chart: %v", err)
	}

	return dc, nil
}

// GetDasha строит таймлайн махадаш от рождения. Уровни 2 и 3 раскрывают
// антардаши и пратьянтардаши.
func (s *chartService) GetDasha(ctx context.Context, in astro.ChartInput, levels int, horizonYears float64) ([]models.DashaPeriod, error) {
	if levels < 1 {
		levels = 1
	}
	if levels > maxDashaLevels {
		levels = maxDashaLevels
	}
	if horizonYears <= 0 {
		horizonYears = defaultDashaHorizonYears
	}

	cacheKey := fmt.Sprintf("dasha:%s:%d:%.1f", chartMomentKey(in), levels, horizonYears)

	var cached []models.DashaPeriod
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	chart, err := astro.CalculateChart(s.eph, in)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart: %w", err)
	}

	periods := astro.VimshottariTimeline(chart.MoonLongitude(), chart.Moment, horizonYears)
	astro.ExpandSubPeriods(periods, levels)

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, periods, s.cacheTTL); err != nil {
		log.Printf("Failed to cache dasha timeline: %v", err)
	}

	return periods, nil
}
