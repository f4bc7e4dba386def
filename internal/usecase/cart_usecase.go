package usecase

import (
	"context"
	"slices"
	"sync"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase はカートの唯一の持ち主。
// 不正な操作はエラーにせず無視する（カートは変わらない）。
// 変更のたびに明細を丸ごと作り直し、保存枠へ書き込む。
type CartUsecase struct {
	cartRepo repo.CartRepository
	log      *zap.Logger

	mu    sync.Mutex
	lines []model.CartLine
}

// DI。起動時に保存済みのカートを読む。
func NewCartUsecase(ctx context.Context, cartRepo repo.CartRepository, log *zap.Logger) *CartUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	lines := cartRepo.Load(ctx)
	if lines == nil {
		lines = []model.CartLine{}
	}
	log.Info("cart loaded", zap.Int("lines", len(lines)))

	return &CartUsecase{
		cartRepo: cartRepo,
		log:      log,
		lines:    lines,
	}
}

type CartView struct {
	Items           []model.CartLine `json:"items"`
	TotalItems      int64            `json:"total_items"`
	TotalPrice      int64            `json:"total_price"`
	TotalPriceLabel string           `json:"total_price_label"`
	Empty           bool             `json:"empty"`
	Message         string           `json:"message,omitempty"`
}

// 無ければ数量1で末尾に追加、有れば在庫未満のときだけ+1。
// 在庫0の商品でも最初の1つは入る。
func (u *CartUsecase) AddToCart(ctx context.Context, p model.Product) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexOf(p.ID)
	if i < 0 {
		next := make([]model.CartLine, 0, len(u.lines)+1)
		next = append(next, u.lines...)
		next = append(next, model.NewCartLine(p))
		u.commit(ctx, next)
		return
	}

	if u.lines[i].Quantity >= u.lines[i].Stock {
		u.log.Debug("add ignored: stock reached", zap.Int64("id", p.ID), zap.Int64("stock", u.lines[i].Stock))
		return
	}

	next := slices.Clone(u.lines)
	next[i].Quantity++
	u.commit(ctx, next)
}

// 無いIDは何もしない
func (u *CartUsecase) RemoveFromCart(ctx context.Context, id int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexOf(id)
	if i < 0 {
		return
	}

	next := make([]model.CartLine, 0, len(u.lines)-1)
	next = append(next, u.lines[:i]...)
	next = append(next, u.lines[i+1:]...)
	u.commit(ctx, next)
}

// stock は呼び出し側が渡す上限（明細の stock を読みにいかない）。
// 1未満・stock超過・無いIDは無視。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, id int64, quantity int64, stock int64) {
	if quantity < 1 || quantity > stock {
		u.log.Debug("update ignored: out of range", zap.Int64("id", id), zap.Int64("quantity", quantity), zap.Int64("stock", stock))
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexOf(id)
	if i < 0 || u.lines[i].Quantity == quantity {
		return
	}

	next := slices.Clone(u.lines)
	next[i].Quantity = quantity
	u.commit(ctx, next)
}

// 現在の明細（コピー）
func (u *CartUsecase) Lines() []model.CartLine {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.lines)
}

func (u *CartUsecase) Line(id int64) (model.CartLine, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexOf(id)
	if i < 0 {
		return model.CartLine{}, false
	}
	return u.lines[i], true
}

func (u *CartUsecase) Totals() model.CartTotals {
	u.mu.Lock()
	defer u.mu.Unlock()
	return model.ComputeTotals(u.lines)
}

func (u *CartUsecase) Cart() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()

	totals := model.ComputeTotals(u.lines)
	view := CartView{
		Items:           slices.Clone(u.lines),
		TotalItems:      totals.TotalItems,
		TotalPrice:      totals.TotalPrice,
		TotalPriceLabel: model.FormatPrice(totals.TotalPrice),
		Empty:           len(u.lines) == 0,
	}
	if view.Empty {
		view.Message = "Cart is empty"
	}
	return view
}

func (u *CartUsecase) indexOf(id int64) int {
	return slices.IndexFunc(u.lines, func(l model.CartLine) bool { return l.ID == id })
}

// 置き換えてから保存。保存失敗はログだけ（再試行しない）。
func (u *CartUsecase) commit(ctx context.Context, next []model.CartLine) {
	u.lines = next
	if err := u.cartRepo.Save(ctx, next); err != nil {
		u.log.Warn("cart save failed", zap.Error(err))
	}
}
