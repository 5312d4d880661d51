package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"jyotish/internal/models"
)

// PanchangRepository отвечает за архив рассчитанных панчангов в постгресе.
// Архив переживает рестарты и сбросы кэша, по нему же чистятся устаревшие записи.
type PanchangRepository interface {
	Upsert(ctx context.Context, rec *models.PanchangRecord) error
	GetByKey(ctx context.Context, locationKey, date, scheme string) (*models.PanchangRecord, error)
	GetByDateRange(ctx context.Context, locationKey, scheme, from, to string) ([]models.PanchangRecord, error)
	DeleteOld(ctx context.Context, olderThan time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type panchangRepository struct {
	db *gorm.DB
}

func NewPanchangRepository(db *gorm.DB) PanchangRepository {
	return &panchangRepository{db: db}
}

// Upsert вставляет запись либо обновляет существующую по ключу
// (location_key, date, scheme), сохраняя идентификатор и время создания.
func (r *panchangRepository) Upsert(ctx context.Context, rec *models.PanchangRecord) error {
	var existing models.PanchangRecord
	err := r.db.WithContext(ctx).
		Where("location_key = ? AND date = ? AND scheme = ?", rec.LocationKey, rec.Date, rec.Scheme).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(rec).Error
	}
	if err != nil {
		return err
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *panchangRepository) GetByKey(ctx context.Context, locationKey, date, scheme string) (*models.PanchangRecord, error) {
	var rec models.PanchangRecord
	err := r.db.WithContext(ctx).
		Where("location_key = ? AND date = ? AND scheme = ?", locationKey, date, scheme).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *panchangRepository) GetByDateRange(ctx context.Context, locationKey, scheme, from, to string) ([]models.PanchangRecord, error) {
	var recs []models.PanchangRecord
	err := r.db.WithContext(ctx).
		Where("location_key = ? AND scheme = ? AND date >= ? AND date <= ?", locationKey, scheme, from, to).
		Order("date ASC").
		Find(&recs).Error
	return recs, err
}

// DeleteOld удаляет записи, рассчитанные раньше указанного момента,
// и возвращает число удалённых строк.
func (r *panchangRepository) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("computed_at < ?", olderThan).
		Delete(&models.PanchangRecord{})
	return res.RowsAffected, res.Error
}

func (r *panchangRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PanchangRecord{}).Count(&count).Error
	return count, err
}
