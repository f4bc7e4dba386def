package repository

import (
	"context"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
)

// 起動時に渡された商品を返すだけのカタログ
type ProductStaticRepository struct {
	products []model.Product
}

// DI
func NewProductStaticRepository(products []model.Product) *ProductStaticRepository {
	cp := make([]model.Product, len(products))
	copy(cp, products)
	return &ProductStaticRepository{products: cp}
}

// 呼び出し側が並べ替えても元のカタログは変わらない
func (r *ProductStaticRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductStaticRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}
