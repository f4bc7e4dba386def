package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"go.uber.org/zap"
)

// カートを1つの保存枠にJSON配列で置く
type CartSlotRepository struct {
	kv  repo.KeyValueStore
	key string
	log *zap.Logger
}

// DI
func NewCartSlotRepository(kv repo.KeyValueStore, key string, log *zap.Logger) *CartSlotRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartSlotRepository{kv: kv, key: key, log: log}
}

// 無い・読めない・壊れている場合は空のカート
func (r *CartSlotRepository) Load(ctx context.Context) []model.CartLine {
	data, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.CartLine{}
	}
	if err != nil {
		r.log.Warn("cart load failed", zap.String("key", r.key), zap.Error(err))
		return []model.CartLine{}
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.log.Warn("cart slot is corrupt", zap.String("key", r.key), zap.Error(err))
		return []model.CartLine{}
	}

	return sanitize(lines, r.log)
}

func (r *CartSlotRepository) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("save cart slot %q: %w", r.key, err)
	}
	return nil
}

// 数量0以下と重複IDを捨てる（先勝ち）
func sanitize(lines []model.CartLine, log *zap.Logger) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	seen := make(map[int64]bool, len(lines))

	for _, l := range lines {
		if l.Quantity < 1 || seen[l.ID] {
			log.Warn("dropping invalid cart line", zap.Int64("id", l.ID), zap.Int64("quantity", l.Quantity))
			continue
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out
}
