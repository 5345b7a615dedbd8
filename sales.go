package minimarket

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PayCash:
		return PayCash, nil
	case PayCard:
		return PayCard, nil
	case PayTransfer:
		return PayTransfer, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// taxRate is the fixed sales tax applied to every sale. It is a constant of
// the design, not configurable per sale.
var taxRate = decimal.New(18, -2)

// AddItem adds quantity units of the product to the item list and returns
// the updated list. The quantity of a line is clamped to the product's
// current stock; adding a product already present increments its existing
// line (still clamped) instead of creating a duplicate. A product with no
// stock left is not added at all.
//
// The resulting SaleItem is a snapshot: product name and unit price are
// copied now and never re-derived.
func AddItem(items []SaleItem, p Product, quantity int) []SaleItem {
	if p.Stock <= 0 {
		return items
	}
	quantity = max(1, quantity)
	for i := range items {
		if items[i].ProductID == p.ID {
			q := min(items[i].Quantity+quantity, p.Stock)
			items[i].Quantity = q
			items[i].Subtotal = items[i].UnitPrice.MulInt(q)
			return items
		}
	}
	q := min(quantity, p.Stock)
	return append(items, SaleItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    q,
		UnitPrice:   p.Price,
		Subtotal:    p.Price.MulInt(q),
	})
}

// Totals computes the amounts of a sale: subtotal is the sum of the line
// subtotals, tax is 18% of it (rounded to cents), total their sum.
func Totals(items []SaleItem) (subtotal, tax, total Money) {
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	tax = Money{value: subtotal.value.Mul(taxRate).Round(2)}
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// Sales returns all recorded sales, oldest first.
func (s *Shop) Sales() ([]Sale, error) {
	return readAll[Sale](s.store, colSales)
}

// CommitSale records the items as a new immutable Sale and decrements the
// stock of every referenced product, with the same floor-at-zero rule as
// the stock ledger. Sales deliberately leave no StockMovement behind: the
// register and the ledger are two independent effect paths onto the same
// stock field.
//
// The sale is appended first, then the products are rewritten. There is no
// rollback: if the stock write fails after the sale went through, the error
// is surfaced and reconciliation is manual.
func (s *Shop) CommitSale(items []SaleItem, method PaymentMethod, customerName string) (Sale, error) {
	if len(items) == 0 {
		return Sale{}, validationErrorf("a sale needs at least one item")
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Sale{}, validationErrorf("invalid payment method %q", method)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return Sale{}, validationErrorf("item %q has non-positive quantity %d", item.ProductID, item.Quantity)
		}
	}

	subtotal, tax, total := Totals(items)
	sale := Sale{
		ID:            newID(),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: method,
		CustomerName:  customerName,
		Date:          time.Now(),
	}

	sales, err := s.Sales()
	if err != nil {
		return Sale{}, err
	}
	sales = append(sales, sale)
	if err := writeAll(s.store, colSales, sales); err != nil {
		return Sale{}, err
	}

	products, err := s.Products()
	if err != nil {
		return Sale{}, err
	}
	for _, item := range items {
		applyStockDelta(products, item.ProductID, -item.Quantity, sale.Date)
	}
	if err := writeAll(s.store, colProducts, products); err != nil {
		return Sale{}, err
	}
	return sale, nil
}
