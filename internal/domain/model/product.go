package model

import "fmt"

// 商品カテゴリ
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryAccessories Category = "Accessories"
)

// 表示順のカテゴリ一覧
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryFashion, CategoryAccessories}
}

// 既知のカテゴリか
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategoryAccessories:
		return true
	}
	return false
}

// カタログの商品（読み取り専用）
type Product struct {
	ID       int64    `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"type:varchar(255);not null" json:"name"`
	Price    int64    `gorm:"not null" json:"price"`
	Category Category `gorm:"type:varchar(50);not null;index" json:"category"`
	Stock    int64    `gorm:"not null" json:"stock"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// 在庫表示
func (p Product) StockStatus() string {
	if p.InStock() {
		return "In Stock"
	}
	return "Out of Stock"
}

// 価格表示（₹）
func FormatPrice(price int64) string {
	return fmt.Sprintf("₹%d", price)
}
