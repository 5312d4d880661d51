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

// PositionsService отдаёт сидерические положения девяти грах на момент.
type PositionsService interface {
	Current(ctx context.Context, t time.Time, scheme models.AyanamsaScheme) ([]models.BodyPosition, error)
}

type positionsService struct {
	eph       astro.Ephemeris
	cacheRepo repository.CacheRepository
}

func NewPositionsService(eph astro.Ephemeris, cacheRepo repository.CacheRepository) PositionsService {
	return &positionsService{eph: eph, cacheRepo: cacheRepo}
}

func (s *positionsService) Current(ctx context.Context, t time.Time, scheme models.AyanamsaScheme) ([]models.BodyPosition, error) {
	// Ключ с точностью до минуты: за неё даже Луна сдвигается меньше угловой минуты
	cacheKey := fmt.Sprintf("positions:%s:%s", t.UTC().Truncate(time.Minute).Format("2006-01-02T15:04"), scheme)

	var cached []models.BodyPosition
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	positions, err := astro.CurrentPositions(s.eph, t, scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate positions: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, positions, 5*time.Minute); err != nil {
		log.Printf("Failed to cache positions: %v", err)
	}

	return positions, nil
}
