package minimarket

import (
	"fmt"
	"strings"
	"time"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// ParseMovementType parses a string into a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(strings.ToLower(s)) {
	case MovementIn:
		return MovementIn, nil
	case MovementOut:
		return MovementOut, nil
	case MovementAdjustment:
		return MovementAdjustment, nil
	default:
		return "", fmt.Errorf("unknown movement type %q", s)
	}
}

// delta converts the movement magnitude into a signed stock change. An
// adjustment is strictly additive, like an entry; only "out" subtracts.
func (t MovementType) delta(quantity int) int {
	if t == MovementOut {
		return -quantity
	}
	return quantity
}

// applyStockDelta mutates the product with the given id inside products,
// clamping the resulting stock at zero and refreshing UpdatedAt. It is the
// single primitive shared by the stock ledger and the sales register; the
// caller is responsible for writing the collection back.
func applyStockDelta(products []Product, id string, delta int, now time.Time) bool {
	for i := range products {
		if products[i].ID == id {
			products[i].Stock = max(0, products[i].Stock+delta)
			products[i].UpdatedAt = now
			return true
		}
	}
	return false
}

// Movements returns the whole stock-movement log, oldest first.
func (s *Shop) Movements() ([]StockMovement, error) {
	return readAll[StockMovement](s.store, colMovements)
}

// RecordMovement validates and records an inventory-adjustment event, and
// applies its effect to the product's stock as one logical operation. The
// movement is recorded with its full magnitude even when clamping reduced
// the actual stock change, and even when the product id resolves to nothing
// (for audit; no stock changes in that case).
//
// The product write happens before the ledger append: a crash between the
// two leaves a mutated stock with no matching ledger entry. That window is
// accepted; no reconciliation pass corrects it.
func (s *Shop) RecordMovement(productID string, typ MovementType, quantity int, reason, userID string) (StockMovement, error) {
	if productID == "" {
		return StockMovement{}, validationErrorf("product id is required")
	}
	if _, err := ParseMovementType(string(typ)); err != nil {
		return StockMovement{}, validationErrorf("invalid movement type %q", typ)
	}
	if quantity <= 0 {
		return StockMovement{}, validationErrorf("movement quantity must be a positive integer, got %d", quantity)
	}
	if strings.TrimSpace(reason) == "" {
		return StockMovement{}, validationErrorf("movement reason is required")
	}

	now := time.Now()

	products, err := s.Products()
	if err != nil {
		return StockMovement{}, err
	}
	if applyStockDelta(products, productID, typ.delta(quantity), now) {
		if err := writeAll(s.store, colProducts, products); err != nil {
			return StockMovement{}, err
		}
	}

	movement := StockMovement{
		ID:        newID(),
		ProductID: productID,
		Type:      typ,
		Quantity:  quantity,
		Reason:    reason,
		Date:      now,
		UserID:    userID,
	}
	movements, err := s.Movements()
	if err != nil {
		return StockMovement{}, err
	}
	movements = append(movements, movement)
	if err := writeAll(s.store, colMovements, movements); err != nil {
		return StockMovement{}, err
	}
	return movement, nil
}
