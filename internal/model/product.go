package model

// Product is a catalog entry owned by the backend.
type Product struct {
	ID          string  `json:"id" csv:"id"`
	Name        string  `json:"name" csv:"name"`
	Price       float64 `json:"price" csv:"price"`
	Stock       int     `json:"stock" csv:"stock"`
	Category    string  `json:"category" csv:"category"`
	Description string  `json:"description,omitempty" csv:"description"`
	Image       string  `json:"image,omitempty" csv:"-"`
}

// StockStatus buckets a product by stock level for display.
type StockStatus string

// Stock statuses.
const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// LowStockThreshold is the highest stock count still considered low.
const LowStockThreshold = 10

// StockStatusOf returns the stock bucket for a stock count. Negative counts,
// which the backend produces when sales outrun stock, count as out of stock.
func StockStatusOf(stock int) StockStatus {
	switch {
	case stock > LowStockThreshold:
		return InStock
	case stock > 0:
		return LowStock
	default:
		return OutOfStock
	}
}

// Status returns the product's stock bucket.
func (p Product) Status() StockStatus {
	return StockStatusOf(p.Stock)
}
