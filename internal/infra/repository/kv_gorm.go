package repository

import (
	"context"
	"errors"
	"time"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// storage_slots テーブルの1行を1キーとして使う
type KeyValueGormStore struct {
	db *gorm.DB
}

// DI
func NewKeyValueGormStore(db *gorm.DB) *KeyValueGormStore {
	return &KeyValueGormStore{db: db}
}

func (s *KeyValueGormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slot model.StorageSlot

	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(slot.Value), nil
}

// 無ければ作る、有れば丸ごと置き換え
func (s *KeyValueGormStore) Set(ctx context.Context, key string, value []byte) error {
	slot := model.StorageSlot{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}
