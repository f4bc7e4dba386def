package usecase

import (
	"cmp"
	"slices"
	"strings"

	"minishop/internal/domain/model"

	"golang.org/x/text/cases"
)

// Project はカタログを絞り込み・並べ替えた新しいスライスを返す。
// 入力は変更しない。同じ価格は元の並びを保つ。
func Project(products []model.Product, f model.FilterState) []model.Product {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	//sortは絞り込みの後
	switch f.Sort {
	case model.SortPriceLow:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(a.Price, b.Price) })
	case model.SortPriceHigh:
		slices.SortStableFunc(out, func(a, b model.Product) int { return cmp.Compare(b.Price, a.Price) })
	}

	return out
}
