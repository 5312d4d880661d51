package worker

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"jyotish/internal/service"
)

// WarmLocation задаёт точку прогрева суточного кэша.
type WarmLocation struct {
	Lat         float64
	Lon         float64
	TZOffsetMin int
}

// ParseWarmLocations разбирает список точек из конфигурации в формате
// "lat,lon,tz_offset_minutes;lat,lon,tz_offset_minutes".
func ParseWarmLocations(raw string) ([]WarmLocation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var locs []WarmLocation
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid warm location %q: want lat,lon,tz_offset_minutes", entry)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid warm location latitude %q: %w", parts[0], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid warm location longitude %q: %w", parts[1], err)
		}
		tz, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid warm location tz offset %q: %w", parts[2], err)
		}
		locs = append(locs, WarmLocation{Lat: lat, Lon: lon, TZOffsetMin: tz})
	}
	return locs, nil
}

// PanchangWarmWorker заранее считает панчанг на сегодня и завтра для
// настроенных точек, чтобы утренние запросы попадали в тёплый кэш.
type PanchangWarmWorker struct {
	service   service.PanchangService
	locations []WarmLocation
	interval  time.Duration
	stopChan  chan struct{}
	isRunning bool
}

func NewPanchangWarmWorker(service service.PanchangService, locations []WarmLocation, interval time.Duration) *PanchangWarmWorker {
	return &PanchangWarmWorker{
		service:   service,
		locations: locations,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

func (w *PanchangWarmWorker) Start() {
	if w.isRunning {
		return
	}

	w.isRunning = true
	log.Printf("Panchang warm worker started with interval %v for %d locations", w.interval, len(w.locations))

	go w.run()
}

func (w *PanchangWarmWorker) Stop() {
	if !w.isRunning {
		return
	}

	close(w.stopChan)
	w.isRunning = false
	log.Println("Panchang warm worker stopped")
}

func (w *PanchangWarmWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый запуск сразу
	w.warmAll()

	for {
		select {
		case <-ticker.C:
			w.warmAll()
		case <-w.stopChan:
			return
		}
	}
}

func (w *PanchangWarmWorker) warmAll() {
	for _, loc := range w.locations {
		now := time.Now().In(time.FixedZone("local", loc.TZOffsetMin*60))
		for _, date := range []time.Time{now, now.AddDate(0, 0, 1)} {
			w.warmOne(date, loc)
		}
	}
}

func (w *PanchangWarmWorker) warmOne(date time.Time, loc WarmLocation) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.service.Warm(ctx, date, loc.Lat, loc.Lon, loc.TZOffsetMin); err != nil {
		log.Printf("Panchang warm worker error for %.4f,%.4f on %s: %v",
			loc.Lat, loc.Lon, date.Format("2006-01-02"), err)
	}
}
