package db

import (
	"fmt"

	"minishop/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return gormDB, nil
}

// 使うテーブルを作る
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.StorageSlot{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
