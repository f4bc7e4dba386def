package usecase

import (
	"context"
	"net/http"
	"sync"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
)

// ProductUsecase は商品一覧と絞り込み条件（FilterState）を持つ。
// 絞り込み条件は保存しない。
type ProductUsecase struct {
	productRepo repo.ProductRepository

	mu     sync.Mutex
	filter model.FilterState
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 一覧の1商品（表示用）
type ProductView struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Price       int64          `json:"price"`
	PriceLabel  string         `json:"price_label"`
	Category    model.Category `json:"category"`
	Stock       int64          `json:"stock"`
	InStock     bool           `json:"in_stock"`
	StockStatus string         `json:"stock_status"`
}

type ProductListOutput struct {
	Items   []ProductView     `json:"items"`
	Total   int               `json:"total"`
	Filter  model.FilterState `json:"filter"`
	Message string            `json:"message,omitempty"`
}

// nil の項目は変更しない
type UpdateFilterInput struct {
	Search   *string
	Category *string
	Sort     *string
}

func NewProductView(p model.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		PriceLabel:  model.FormatPrice(p.Price),
		Category:    p.Category,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		StockStatus: p.StockStatus(),
	}
}

func (u *ProductUsecase) Filter() model.FilterState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.filter
}

// 全項目を検証してからまとめて反映する。
func (u *ProductUsecase) UpdateFilter(in UpdateFilterInput) (model.FilterState, error) {
	if in.Category != nil && *in.Category != "" && !model.Category(*in.Category).Valid() {
		return model.FilterState{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.Sort != nil && !model.SortMode(*in.Sort).Valid() {
		return model.FilterState{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if in.Search != nil {
		u.filter.Search = *in.Search
	}
	if in.Category != nil {
		u.filter.Category = model.Category(*in.Category)
	}
	if in.Sort != nil {
		u.filter.Sort = model.SortMode(*in.Sort)
	}
	return u.filter, nil
}

func (u *ProductUsecase) SetSearch(search string) model.FilterState {
	f, _ := u.UpdateFilter(UpdateFilterInput{Search: &search})
	return f
}

// 空文字はカテゴリ絞り込みなし
func (u *ProductUsecase) SetCategory(category string) (model.FilterState, error) {
	return u.UpdateFilter(UpdateFilterInput{Category: &category})
}

func (u *ProductUsecase) SetSort(sort string) (model.FilterState, error) {
	return u.UpdateFilter(UpdateFilterInput{Sort: &sort})
}

// 検索・カテゴリ・ソートを一度に空へ戻す
func (u *ProductUsecase) ClearFilters() model.FilterState {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.filter = model.FilterState{}
	return u.filter
}

func (u *ProductUsecase) Categories() []model.Category {
	return model.Categories()
}

// 現在の絞り込み条件で毎回カタログから計算し直す。
func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	f := u.Filter()

	all, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products := Project(all, f)
	items := make([]ProductView, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductView(p))
	}

	out := ProductListOutput{
		Items:  items,
		Total:  len(items),
		Filter: f,
	}
	if len(items) == 0 {
		out.Message = "No products found"
	}
	return out, nil
}

func (u *ProductUsecase) FindProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
