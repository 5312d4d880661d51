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

const defaultMuhuratTTL = 6 * time.Hour

// EventTypeInfo описывает категорию события для справочника.
type EventTypeInfo struct {
	Type        models.EventType `json:"type"`
	Description string           `json:"description"`
}

// TodaySummary собирает подсказки на текущие сутки: панчанг, действующая
// чогхадия, ближайший благоприятный сегмент и активные запретные периоды.
type TodaySummary struct {
	Date              string                   `json:"date"`
	Panchang          *models.Panchang         `json:"panchang"`
	CurrentChoghadiya *models.ChoghadiyaPeriod `json:"current_choghadiya,omitempty"`
	NextAuspicious    *models.ChoghadiyaPeriod `json:"next_auspicious,omitempty"`
	CurrentHora       *models.HoraPeriod       `json:"current_hora,omitempty"`
	ActiveBlocks      []string                 `json:"active_blocks"`
}

// MuhuratService ищет благоприятные окна и отвечает за справочник категорий.
type MuhuratService interface {
	Search(ctx context.Context, q models.MuhuratQuery) (*models.MuhuratResult, error)
	EventTypes() []EventTypeInfo
	Today(ctx context.Context, now time.Time, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) (*TodaySummary, error)
}

type muhuratService struct {
	eph         astro.Ephemeris
	rules       astro.RuleSet
	cacheRepo   repository.CacheRepository
	panchangSvc PanchangService
	cacheTTL    time.Duration
}

func NewMuhuratService(eph astro.Ephemeris, rules astro.RuleSet, cacheRepo repository.CacheRepository, panchangSvc PanchangService, cacheTTL time.Duration) MuhuratService {
	if rules == nil {
		rules = astro.DefaultEventRules()
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultMuhuratTTL
	}
	return &muhuratService{
		eph:         eph,
		rules:       rules,
		cacheRepo:   cacheRepo,
		panchangSvc: panchangSvc,
		cacheTTL:    cacheTTL,
	}
}

func (s *muhuratService) Search(ctx context.Context, q models.MuhuratQuery) (*models.MuhuratResult, error) {
	cacheKey := fmt.Sprintf("muhurat:%s:%s:%s:%s:%s:%t:%t:%v:%v:%d",
		q.Event, LocationKey(q.Latitude, q.Longitude),
		q.Start.UTC().Format("2006-01-02T15:04"), q.End.UTC().Format("2006-01-02T15:04"),
		q.Ayanamsa, q.AvoidRahuKalam, q.AvoidYamagandam,
		q.ExcludeTithis, q.ExcludeNakshatras, q.MaxResults)

	// Пробуем получить из кэша
	var cached models.MuhuratResult
	if err := s.cacheRepo.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Event != "" {
		return &cached, nil
	}

	res, err := astro.FindMuhurat(s.eph, s.rules, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search muhurat windows: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, cacheKey, res, s.cacheTTL); err != nil {
		log.Printf("Failed to cache muhurat search: %v", err)
	}

	return res, nil
}

// EventTypes перечисляет категории с описаниями из действующей таблицы правил.
// Категории без собственного правила наследуют описание общей таблицы.
func (s *muhuratService) EventTypes() []EventTypeInfo {
	general := s.rules[models.EventGeneralAuspicious]
	infos := make([]EventTypeInfo, 0, len(models.EventTypes()))
	for _, et := range models.EventTypes() {
		rule, ok := s.rules[et]
		if !ok {
			rule = general
		}
		infos = append(infos, EventTypeInfo{Type: et, Description: rule.Description})
	}
	return infos
}

func (s *muhuratService) Today(ctx context.Context, now time.Time, lat, lon float64, tzOffsetMin int, scheme models.AyanamsaScheme) (*TodaySummary, error) {
	p, err := s.panchangSvc.GetDaily(ctx, now, lat, lon, tzOffsetMin, scheme)
	if err != nil {
		return nil, err
	}
	day, night, err := s.panchangSvc.GetChoghadiya(ctx, now, lat, lon, tzOffsetMin)
	if err != nil {
		return nil, err
	}
	horas, err := s.panchangSvc.GetHora(ctx, now, lat, lon, tzOffsetMin)
	if err != nil {
		return nil, err
	}

	summary := &TodaySummary{
		Date:         p.Date.Format("2006-01-02"),
		Panchang:     p,
		ActiveBlocks: activeBlocks(now, p),
	}

	segments := append(append([]models.ChoghadiyaPeriod{}, day...), night...)
	for i := range segments {
		if !now.Before(segments[i].Start) && now.Before(segments[i].End) {
			summary.CurrentChoghadiya = &segments[i]
			break
		}
	}
	for i := range segments {
		if segments[i].Start.After(now) && auspiciousNature(segments[i].Nature) {
			summary.NextAuspicious = &segments[i]
			break
		}
	}
	for i := range horas {
		if !now.Before(horas[i].Start) && now.Before(horas[i].End) {
			summary.CurrentHora = &horas[i]
			break
		}
	}

	return summary, nil
}

func auspiciousNature(nature string) bool {
	return nature == "Excellent" || nature == "Good"
}

// activeBlocks возвращает запретные периоды, действующие в данный момент.
func activeBlocks(now time.Time, p *models.Panchang) []string {
	blocks := []string{}
	for _, ip := range []models.InauspiciousPeriod{p.RahuKalam, p.Yamagandam, p.GulikaKalam} {
		if !now.Before(ip.Start) && now.Before(ip.End) {
			blocks = append(blocks, ip.Name)
		}
	}
	return blocks
}
