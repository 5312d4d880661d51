package worker

import (
	"context"
	"log"
	"time"

	"jyotish/internal/repository"
)

// ArchivePruneWorker раз в сутки удаляет из архива панчанга записи
// старше срока хранения.
type ArchivePruneWorker struct {
	repo      repository.PanchangRepository
	retention time.Duration
	interval  time.Duration
	stopChan  chan struct{}
	isRunning bool
}

func NewArchivePruneWorker(repo repository.PanchangRepository, retention, interval time.Duration) *ArchivePruneWorker {
	return &ArchivePruneWorker{
		repo:      repo,
		retention: retention,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

func (w *ArchivePruneWorker) Start() {
	if w.isRunning {
		return
	}

	w.isRunning = true
	log.Printf("Archive prune worker started with interval %v, retention %v", w.interval, w.retention)

	go w.run()
}

func (w *ArchivePruneWorker) Stop() {
	if !w.isRunning {
		return
	}

	close(w.stopChan)
	w.isRunning = false
	log.Println("Archive prune worker stopped")
}

func (w *ArchivePruneWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый запуск сразу
	w.prune()

	for {
		select {
		case <-ticker.C:
			w.prune()
		case <-w.stopChan:
			return
		}
	}
}

func (w *ArchivePruneWorker) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().UTC().Add(-w.retention)
	n, err := w.repo.DeleteOld(ctx, cutoff)
	if err != nil {
		log.Printf("Archive prune worker error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Archive prune worker: removed %d records older than %s", n, cutoff.Format("2006-01-02"))
	}
}
