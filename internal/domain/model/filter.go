package model

// 価格ソート
type SortMode string

const (
	SortNone      SortMode = ""
	SortPriceLow  SortMode = "low"
	SortPriceHigh SortMode = "high"
)

func (s SortMode) Valid() bool {
	switch s {
	case SortNone, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// 一覧の絞り込み条件（永続化しない）
// Category が空ならカテゴリ絞り込みなし。
type FilterState struct {
	Search   string   `json:"search"`
	Category Category `json:"category"`
	Sort     SortMode `json:"sort"`
}
