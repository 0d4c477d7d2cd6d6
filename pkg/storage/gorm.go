package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRecord is the SQL row holding one session's serialized cart.
type CartRecord struct {
	StorageKey string    `gorm:"column:storage_key;primaryKey"`
	Payload    string    `gorm:"column:payload"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (CartRecord) TableName() string {
	return "cart_records"
}

// Gorm persists cart records in the cart_records table (sqlite or postgres).
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Load(ctx context.Context, key string) ([]byte, error) {
	var record CartRecord
	err := g.db.WithContext(ctx).First(&record, "storage_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(record.Payload), nil
}

func (g *Gorm) Save(ctx context.Context, key string, payload []byte) error {
	record := CartRecord{
		StorageKey: key,
		Payload:    string(payload),
		UpdatedAt:  time.Now().UTC(),
	}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Delete(&CartRecord{}, "storage_key = ?", key).Error
}
