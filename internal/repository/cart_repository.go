package repository

import (
	"context"

	"minishop/internal/domain/model"
)

// カートの永続化の約束。
// Loadは失敗しない（無い・壊れている場合は空のカート）。
type CartRepository interface {
	Load(ctx context.Context) []model.CartLine
	Save(ctx context.Context, lines []model.CartLine) error
}

// 名前付きの保存枠。キーが無いときは ErrNotFound。
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
