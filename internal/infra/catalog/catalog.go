package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"minishop/internal/domain/model"
)

//go:embed products.json
var productsJSON []byte

// 同梱カタログを読み込む
func Products() ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// 同梱カタログ（壊れていたら起動できない）
func MustProducts() []model.Product {
	products, err := Products()
	if err != nil {
		panic(err)
	}
	return products
}
