package service

import (
	"context"
	"fmt"

	"jyotish/internal/astro"
	"jyotish/internal/models"
)

// MatchmakingService считает брачную совместимость по южной (порутхам)
// и северной (аштакута) рубрикам. Входом служат либо готовые пары
// накшатра-раши, либо данные рождения обоих партнёров.
type MatchmakingService interface {
	Porutham(bride, groom models.MatchParty) (*models.PoruthamResult, error)
	Ashtakoota(bride, groom models.MatchParty) (*models.AshtakootaResult, error)
	Compatibility(bride, groom models.MatchParty) (*models.CompatibilityResult, error)
	CompatibilityFromBirth(ctx context.Context, bride, groom astro.ChartInput) (*models.CompatibilityResult, error)
}

type matchmakingService struct {
	eph astro.Ephemeris
}

func NewMatchmakingService(eph astro.Ephemeris) MatchmakingService {
	return &matchmakingService{eph: eph}
}

func (s *matchmakingService) Porutham(bride, groom models.MatchParty) (*models.PoruthamResult, error) {
	return astro.CalculatePorutham(bride, groom)
}

func (s *matchmakingService) Ashtakoota(bride, groom models.MatchParty) (*models.AshtakootaResult, error) {
	return astro.CalculateAshtakoota(bride, groom)
}

func (s *matchmakingService) Compatibility(bride, groom models.MatchParty) (*models.CompatibilityResult, error) {
	return astro.CalculateCompatibility(bride, groom)
}

// CompatibilityFromBirth строит карты обоих партнёров и сравнивает
// их лунные позиции.
func (s *matchmakingService) CompatibilityFromBirth(_ context.Context, bride, groom astro.ChartInput) (*models.CompatibilityResult, error) {
	brideChart, err := astro.CalculateChart(s.eph, bride)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate bride chart: %w", err)
	}
	groomChart, err := astro.CalculateChart(s.eph, groom)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate groom chart: %w", err)
	}

	return astro.CalculateCompatibility(
		models.MatchParty{Nakshatra: brideChart.MoonNakshatra, Rashi: brideChart.MoonRashi},
		models.MatchParty{Nakshatra: groomChart.MoonNakshatra, Rashi: groomChart.MoonRashi},
	)
}
