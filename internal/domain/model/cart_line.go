package model

// カートの明細
// name/price/stockは追加時点のスナップショット。
type CartLine struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category Category `json:"category,omitempty"`
	Stock    int64    `json:"stock"`
	Quantity int64    `json:"quantity"`
}

// 商品から数量1の明細を作る
func NewCartLine(p Product) CartLine {
	return CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    p.Stock,
		Quantity: 1,
	}
}

func (l CartLine) Subtotal() int64 {
	return l.Price * l.Quantity
}

// 合計（保存しない、毎回計算）
type CartTotals struct {
	TotalItems int64 `json:"total_items"`
	TotalPrice int64 `json:"total_price"`
}

func ComputeTotals(lines []CartLine) CartTotals {
	var t CartTotals
	for _, l := range lines {
		t.TotalItems += l.Quantity
		t.TotalPrice += l.Subtotal()
	}
	return t
}
