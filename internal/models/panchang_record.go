package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PanchangRecord хранит рассчитанный панчанг в архиве постгреса.
// Ключ местоположения складывается из широты и долготы с точностью
// до четырёх знаков.
type PanchangRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	LocationKey string         `gorm:"not null;uniqueIndex:idx_panchang_day"`
	Date        string         `gorm:"type:date;not null;uniqueIndex:idx_panchang_day"`
	Scheme      string         `gorm:"not null;uniqueIndex:idx_panchang_day"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	ComputedAt  time.Time      `gorm:"not null;default:now()"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}
