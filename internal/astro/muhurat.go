package astro

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"jyotish/internal/models"
)

const (
	// Предел диапазона поиска в днях.
	maxSearchDays = 90
	// Минимальная длительность пригодного окна.
	minWindowLength = 30 * time.Minute
	// Размер пула при обходе дней диапазона.
	searchWorkers = 4

	defaultMaxResults = 20
	baseDayScore      = 50.0
)

// EventRule задаёт благоприятные элементы и запреты для категории события.
type EventRule struct {
	GoodTithis     []int    `yaml:"good_tithis"`
	GoodNakshatras []int    `yaml:"good_nakshatras"`
	GoodWeekdays   []int    `yaml:"good_weekdays"`
	AvoidYogas     []string `yaml:"avoid_yogas"`
	AvoidMasas     []string `yaml:"avoid_masas"`
	Description    string   `yaml:"description"`
}

// RuleSet сопоставляет категории события её правилу. Для категорий без
// собственного правила действует таблица general_auspicious.
type RuleSet map[models.EventType]EventRule

// DefaultEventRules возвращает свежую копию встроенной таблицы правил.
func DefaultEventRules() RuleSet {
	return RuleSet{
		models.EventMarriage: {
			GoodTithis:     []int{2, 3, 5, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{3, 4, 7, 8, 11, 12, 13, 17, 20, 21, 22, 25, 27},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Ganda", "Vyaghata", "Vajra", "Vyatipata", "Parigha", "Vaidhriti"},
			Description:    "Marriage ceremonies require highly auspicious times for lifelong harmony.",
		},
		models.EventGrihaPravesh: {
			GoodTithis:     []int{2, 3, 5, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{3, 4, 6, 7, 8, 11, 12, 13, 20, 21, 22, 25, 26, 27},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Ganda", "Vyaghata", "Vajra", "Vyatipata"},
			AvoidMasas:     []string{"Ashwin", "Pausha"},
			Description:    "House warming requires prosperity-bringing planetary alignments.",
		},
		models.EventBusinessOpening: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{3, 4, 7, 8, 11, 12, 13, 16, 17, 20, 21, 22, 25, 27},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Ganda"},
			Description:    "Business ventures need wealth-attracting muhurat.",
		},
		models.EventTravel: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 17, 20, 21, 22, 25, 26, 27},
			GoodWeekdays:   []int{0, 1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Shula", "Vyaghata", "Vajra"},
			Description:    "Travel muhurat ensures safe and successful journeys.",
		},
		models.EventVehiclePurchase: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{1, 3, 4, 5, 7, 8, 11, 12, 13, 17, 20, 21, 22},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Vyaghata"},
			Description:    "Vehicle purchase requires stability and safety-enhancing times.",
		},
		models.EventNamingCeremony: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{1, 2, 3, 4, 5, 7, 8, 11, 12, 13, 17, 20, 21, 22, 25, 26, 27},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula"},
			Description:    "Naming ceremony muhurat blesses the child with a fortunate name.",
		},
		models.EventSurgery: {
			GoodTithis:     []int{1, 2, 3, 6, 7, 10, 11, 12},
			GoodNakshatras: []int{1, 4, 5, 7, 8, 11, 12, 13, 17, 20, 21, 22},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Ganda", "Vyaghata", "Vajra"},
			Description:    "Medical procedures need healing-supportive planetary positions.",
		},
		models.EventEducationStart: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{1, 4, 5, 7, 8, 9, 11, 12, 13, 14, 17, 20, 21, 22, 25, 27},
			GoodWeekdays:   []int{1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Shula", "Ganda"},
			Description:    "Education muhurat enhances learning and intellectual growth.",
		},
		models.EventGeneralAuspicious: {
			GoodTithis:     []int{2, 3, 5, 6, 7, 10, 11, 12, 13},
			GoodNakshatras: []int{1, 2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 17, 20, 21, 22, 25, 26, 27},
			GoodWeekdays:   []int{0, 1, 3, 4, 5},
			AvoidYogas:     []string{"Vishkambha", "Atiganda", "Shula", "Ganda", "Vyaghata"},
			Description:    "General auspicious time for important activities.",
		},
	}
}

type ruleOverride struct {
	GoodTithis     *[]int    `yaml:"good_tithis"`
	GoodNakshatras *[]int    `yaml:"good_nakshatras"`
	GoodWeekdays   *[]int    `yaml:"good_weekdays"`
	AvoidYogas     *[]string `yaml:"avoid_yogas"`
	AvoidMasas     *[]string `yaml:"avoid_masas"`
	Description    *string   `yaml:"description"`
}

// LoadRuleOverrides читает YAML с частичными правками правил и
// накладывает их на встроенную таблицу. Неизвестная категория события
// считается ошибкой конфигурации.
func LoadRuleOverrides(path string) (RuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read muhurat rules: %w", err)
	}

	var overrides map[string]ruleOverride
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse muhurat rules: %w", err)
	}

	rules := DefaultEventRules()
	for name, ov := range overrides {
		event, ok := models.ParseEventType(name)
		if !ok {
			return nil, fmt.Errorf("muhurat rules: unknown event type %q", name)
		}
		rule := rules[event]
		if ov.GoodTithis != nil {
			rule.GoodTithis = *ov.GoodTithis
		}
		if ov.GoodNakshatras != nil {
			rule.GoodNakshatras = *ov.GoodNakshatras
		}
		if ov.GoodWeekdays != nil {
			rule.GoodWeekdays = *ov.GoodWeekdays
		}
		if ov.AvoidYogas != nil {
			rule.AvoidYogas = *ov.AvoidYogas
		}
		if ov.AvoidMasas != nil {
			rule.AvoidMasas = *ov.AvoidMasas
		}
		if ov.Description != nil {
			rule.Description = *ov.Description
		}
		rules[event] = rule
	}
	return rules, nil
}

// FindMuhurat обходит дни диапазона, оценивает каждый по правилу события
// и собирает свободные от вредоносных периодов окна с баллами.
func FindMuhurat(eph Ephemeris, rules RuleSet, q models.MuhuratQuery) (*models.MuhuratResult, error) {
	if q.End.Before(q.Start) {
		return nil, &InvalidRangeError{Reason: "end date before start date"}
	}
	if q.End.Sub(q.Start) > maxSearchDays*24*time.Hour {
		return nil, &InvalidRangeError{Reason: fmt.Sprintf("search range exceeds %d days", maxSearchDays)}
	}
	if rules == nil {
		rules = DefaultEventRules()
	}
	rule, ok := rules[q.Event]
	if !ok {
		rule = rules[models.EventGeneralAuspicious]
	}
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	loc := time.FixedZone("local", q.TZOffsetMin*60)
	start := q.Start.In(loc)
	var days []time.Time
	for d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc); !d.After(q.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	// Дни считаются параллельно, результаты ложатся в слоты своего дня,
	// поэтому итоговый порядок не зависит от планировщика.
	slots := make([][]models.MuhuratWindow, len(days))
	idxCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < searchWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				p, err := CalculatePanchang(eph, days[i], q.Latitude, q.Longitude, q.TZOffsetMin, q.Ayanamsa)
				if err != nil {
					continue
				}
				slots[i] = evaluateDay(p, rule, q)
			}
		}()
	}
	for i := range days {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	windows := make([]models.MuhuratWindow, 0, maxResults*3)
	for _, dayWindows := range slots {
		if len(windows) >= maxResults*3 {
			break
		}
		windows = append(windows, dayWindows...)
	}

	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Score != windows[j].Score {
			return windows[i].Score > windows[j].Score
		}
		return windows[i].Start.Before(windows[j].Start)
	})
	if len(windows) > maxResults {
		windows = windows[:maxResults]
	}

	result := &models.MuhuratResult{
		Event:       q.Event,
		SearchStart: q.Start,
		SearchEnd:   q.End,
		Latitude:    q.Latitude,
		Longitude:   q.Longitude,
		Windows:     windows,
		TotalFound:  len(windows),
		Filters: map[string]bool{
			"avoid_rahu_kalam":            q.AvoidRahuKalam,
			"avoid_yamagandam":            q.AvoidYamagandam,
			"custom_nakshatra_exclusions": len(q.ExcludeNakshatras) > 0,
			"custom_tithi_exclusions":     len(q.ExcludeTithis) > 0,
		},
	}
	if len(windows) > 0 {
		result.Best = &windows[0]
	}
	return result, nil
}

// evaluateDay выставляет дню балл по элементам панчанга и нарезает
// световой день на окна вне вредоносных периодов.
func evaluateDay(p *models.Panchang, rule EventRule, q models.MuhuratQuery) []models.MuhuratWindow {
	if containsInt(q.ExcludeTithis, int(p.Tithi.Number)) {
		return nil
	}
	if containsInt(q.ExcludeNakshatras, int(p.Nakshatra.Number)) {
		return nil
	}

	score := baseDayScore
	var positives, negatives, warnings []string

	if containsInt(rule.GoodTithis, int(p.Tithi.Number)) {
		score += 10
		positives = append(positives, fmt.Sprintf("Auspicious tithi: %s", p.Tithi.Name))
	} else {
		score -= 10
		negatives = append(negatives, fmt.Sprintf("Tithi %s not ideal for this event", p.Tithi.Name))
	}

	if containsInt(rule.GoodNakshatras, int(p.Nakshatra.Number)) {
		score += 15
		positives = append(positives, fmt.Sprintf("Auspicious nakshatra: %s", p.Nakshatra.Name))
	} else {
		score -= 10
		negatives = append(negatives, fmt.Sprintf("Nakshatra %s not ideal", p.Nakshatra.Name))
	}

	if containsInt(rule.GoodWeekdays, int(p.Vaara.Number)) {
		score += 10
		positives = append(positives, fmt.Sprintf("Favorable weekday: %s", p.Vaara.Name))
	} else {
		score -= 5
		negatives = append(negatives, fmt.Sprintf("%s not ideal for this event", p.Vaara.Name))
	}

	if containsStr(rule.AvoidYogas, p.Yoga.Name) {
		score -= 15
		negatives = append(negatives, fmt.Sprintf("Inauspicious yoga: %s", p.Yoga.Name))
	} else if p.Yoga.Nature == models.YogaAuspicious {
		score += 10
		positives = append(positives, fmt.Sprintf("Auspicious yoga: %s", p.Yoga.Name))
	}

	if containsStr(rule.AvoidMasas, p.Masa) {
		score -= 10
		warnings = append(warnings, fmt.Sprintf("Lunar month %s generally avoided for this event", p.Masa))
	}

	var blocked []models.InauspiciousPeriod
	if q.AvoidRahuKalam {
		blocked = append(blocked, p.RahuKalam)
	}
	if q.AvoidYamagandam {
		blocked = append(blocked, p.Yamagandam)
	}
	blocked = append(blocked, p.GulikaKalam)
	sort.Slice(blocked, func(i, j int) bool { return blocked[i].Start.Before(blocked[j].Start) })

	var windows []models.MuhuratWindow
	for _, clear := range clearSpans(p.Sun.Sunrise, p.Sun.Sunset, blocked) {
		if clear.end.Sub(clear.start) < minWindowLength {
			continue
		}
		windowScore := score + clear.end.Sub(clear.start).Hours()*2
		quality := models.QualityForScore(windowScore)
		if quality == models.QualityPoor {
			continue
		}
		windows = append(windows, models.MuhuratWindow{
			Start:           clear.start,
			End:             clear.end,
			Quality:         quality,
			Score:           clampScore(windowScore),
			Event:           q.Event,
			Tithi:           p.Tithi.Name,
			Nakshatra:       p.Nakshatra.Name,
			Yoga:            p.Yoga.Name,
			Karana:          p.Karana.Name,
			Vaara:           p.Vaara.Name,
			PositiveFactors: append([]string(nil), positives...),
			NegativeFactors: append([]string(nil), negatives...),
			Warnings:        append([]string(nil), warnings...),
		})
	}
	return windows
}

type timeSpan struct {
	start, end time.Time
}

// clearSpans вычитает занятые интервалы из [dayStart, dayEnd].
// Интервалы должны быть отсортированы по началу.
func clearSpans(dayStart, dayEnd time.Time, blocked []models.InauspiciousPeriod) []timeSpan {
	if len(blocked) == 0 {
		return []timeSpan{{dayStart, dayEnd}}
	}

	var spans []timeSpan
	current := dayStart
	for _, b := range blocked {
		if current.Before(b.Start) {
			spans = append(spans, timeSpan{current, b.Start})
		}
		if b.End.After(current) {
			current = b.End
		}
	}
	if current.Before(dayEnd) {
		spans = append(spans, timeSpan{current, dayEnd})
	}
	return spans
}

func clampScore(s float64) float64 {
	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return s
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsStr(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
