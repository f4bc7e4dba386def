package repository

import (
	"context"
	"errors"

	"minishop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログ（商品一覧）の取得だけを約束。
// 読み取り専用で、返すスライスは呼び出し側が自由に使ってよい。
type ProductRepository interface {
	// ID昇順（カタログの並び）で全件
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
