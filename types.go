package minimarket

import "time"

// Category groups products under a stable identifier. The identifier is a
// slug, either supplied by the caller or derived from the name.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"` // display hint, e.g. "#3b82f6"
	CreatedAt   time.Time `json:"createdAt"`
}

// Product is a catalog entry with its live on-hand stock.
//
// Category is a plain identifier, not an enforced foreign key: a product may
// reference a category that no longer exists. Stock is mutated by the stock
// ledger and the sales register in addition to catalog edits, and never goes
// below zero.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       Money     `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	Barcode     string    `json:"barcode,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Low reports whether the product is at or below its low-stock threshold.
func (p Product) Low() bool { return p.Stock <= p.MinStock }

// SaleItem is a frozen snapshot of one sale line. ProductName and UnitPrice
// are copied at sale time and never re-derived from the catalog.
type SaleItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	Subtotal    Money  `json:"subtotal"`
}

// Sale is an immutable record of a committed transaction.
type Sale struct {
	ID            string        `json:"id"`
	Items         []SaleItem    `json:"items"`
	Subtotal      Money         `json:"subtotal"`
	Tax           Money         `json:"tax"`
	Total         Money         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CustomerName  string        `json:"customerName,omitempty"`
	Date          time.Time     `json:"date"`
}

// StockMovement is one entry of the append-only inventory-adjustment log.
// Quantity is the magnitude of the change; the direction comes from Type.
type StockMovement struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	Date      time.Time    `json:"date"`
	UserID    string       `json:"userId,omitempty"`
}
