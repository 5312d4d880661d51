package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jyotish/internal/clients"
	"jyotish/internal/repository"
)

// GeocodeService превращает название города в координаты,
// кэшируя ответы внешнего геокодера.
type GeocodeService interface {
	Resolve(ctx context.Context, city string) (*clients.GeocodeResult, error)
}

type geocodeService struct {
	client    clients.GeocodeClient
	cacheRepo repository.CacheRepository
}

func NewGeocodeService(client clients.GeocodeClient, cacheRepo repository.CacheRepository) GeocodeService {
	return &geocodeService{client: client, cacheRepo: cacheRepo}
}

func (s *geocodeService) Resolve(ctx context.Context, city string) (*clients.GeocodeResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city name is empty")
	}
	cacheKey := fmt.Sprintf("geocode:%s", strings.ToLower(city))

	// Пробуем получить из кэша
	var cached clients.GeocodeResult
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Name != "" {
		return &cached, nil
	}

	res, err := s.client.Search(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", city, err)
	}

	// Кэшируем на сутки
	if err := s.cacheRepo.SetJSON(ctx, cacheKey, res, 24*time.Hour); err != nil {
		log.Printf("Failed to cache geocode result: %v", err)
	}

	return res, nil
}
