package minimarket

import (
	"testing"
	"time"
)

// saleOn builds a recorded sale with a fixed date, bypassing the register.
func saleOn(date time.Time, items ...SaleItem) Sale {
	subtotal, tax, total := Totals(items)
	return Sale{
		ID:            newID(),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: PayCash,
		Date:          date,
	}
}

func item(productID, name string, qty int, price Money) SaleItem {
	return SaleItem{ProductID: productID, ProductName: name, Quantity: qty, UnitPrice: price, Subtotal: price.MulInt(qty)}
}

func TestNewDashboard(t *testing.T) {
	shop := newTestShop(t)
	mustSaveProduct(t, shop, Product{ID: "1", Name: "Cola", Category: "drinks", Price: M(2.50), Stock: 50, MinStock: 10})
	mustSaveProduct(t, shop, Product{ID: "2", Name: "Rice", Category: "groceries", Price: M(3.75), Stock: 2, MinStock: 5})
	mustSaveProduct(t, shop, Product{ID: "3", Name: "Soap", Category: "personal-care", Price: M(1.20), Stock: 0, MinStock: 3})

	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(now.Add(-2*time.Hour), item("1", "Cola", 2, M(2.50))),           // today
		saleOn(now.AddDate(0, 0, -3), item("2", "Rice", 1, M(3.75))),           // this month
		saleOn(time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC), item("1", "Cola", 1, M(2.50))), // last month
	}
	if err := writeAll(shop.store, colSales, sales); err != nil {
		t.Fatal(err)
	}

	d, err := shop.NewDashboard(now)
	if err != nil {
		t.Fatal(err)
	}

	if d.Stats.TotalProducts != 3 {
		t.Errorf("TotalProducts = %d, want 3", d.Stats.TotalProducts)
	}
	if d.Stats.LowStockProducts != 2 {
		t.Errorf("LowStockProducts = %d, want 2", d.Stats.LowStockProducts)
	}
	if d.Stats.TodaySales != 1 {
		t.Errorf("TodaySales = %d, want 1", d.Stats.TodaySales)
	}
	if d.Stats.MonthSales != 2 {
		t.Errorf("MonthSales = %d, want 2", d.Stats.MonthSales)
	}
	// month revenue: (2*2.50)*1.18 + 3.75*1.18 = 5.90 + 4.43 (tax rounded per sale)
	if d.Stats.TotalRevenue.String() != "10.33" {
		t.Errorf("TotalRevenue = %v, want 10.33", d.Stats.TotalRevenue)
	}
	if len(d.RecentSales) != 3 {
		t.Errorf("RecentSales has %d entries, want 3", len(d.RecentSales))
	}
	// newest first
	if !d.RecentSales[0].Date.Equal(sales[0].Date) && !d.RecentSales[0].Date.After(d.RecentSales[1].Date) {
		t.Errorf("RecentSales is not newest first")
	}
	if len(d.LowStock) != 2 {
		t.Errorf("LowStock has %d entries, want 2", len(d.LowStock))
	}
}

func TestNewSalesReport(t *testing.T) {
	shop := newTestShop(t)
	mustSaveProduct(t, shop, Product{ID: "1", Name: "Cola", Category: "drinks", Price: M(2.50), Stock: 50, MinStock: 10})
	mustSaveProduct(t, shop, Product{ID: "2", Name: "Rice", Category: "groceries", Price: M(3.75), Stock: 0, MinStock: 5})

	now := time.Date(2025, time.June, 15, 18, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(now.AddDate(0, 0, -1), item("1", "Cola", 3, M(2.50)), item("2", "Rice", 1, M(3.75))),
		saleOn(now.AddDate(0, 0, -2), item("1", "Cola", 2, M(2.50))),
		saleOn(now.AddDate(0, 0, -40), item("1", "Cola", 9, M(2.50))), // outside the month
		saleOn(now.AddDate(0, 0, -3), item("ghost", "Deleted Product", 1, M(1.00))),
	}
	if err := writeAll(shop.store, colSales, sales); err != nil {
		t.Fatal(err)
	}

	r, err := shop.NewSalesReport(Monthly, now)
	if err != nil {
		t.Fatal(err)
	}

	if r.TotalSales != 3 {
		t.Errorf("TotalSales = %d, want 3", r.TotalSales)
	}
	if r.TotalItems != 7 {
		t.Errorf("TotalItems = %d, want 7", r.TotalItems)
	}
	// revenue: 13.28 + 5.90 + 1.18
	if r.TotalRevenue.String() != "20.36" {
		t.Errorf("TotalRevenue = %v, want 20.36", r.TotalRevenue)
	}
	if r.AverageTicket.String() != "6.79" {
		t.Errorf("AverageTicket = %v, want 6.79", r.AverageTicket)
	}

	if len(r.TopProducts) != 3 {
		t.Fatalf("TopProducts has %d entries, want 3", len(r.TopProducts))
	}
	if r.TopProducts[0].ProductID != "1" || r.TopProducts[0].Quantity != 5 {
		t.Errorf("top product = %+v, want Cola with quantity 5", r.TopProducts[0])
	}
	if r.TopProducts[0].Revenue.String() != "12.5" {
		t.Errorf("top product revenue = %v, want 12.5", r.TopProducts[0].Revenue)
	}

	// category rows follow the live catalog; the deleted product's item is
	// counted in the totals above but no category row
	if len(r.Categories) != 2 {
		t.Fatalf("Categories has %d entries, want 2", len(r.Categories))
	}
	if r.Categories[0].CategoryID != "drinks" || r.Categories[0].Quantity != 5 {
		t.Errorf("Categories[0] = %+v, want drinks with quantity 5", r.Categories[0])
	}
	if r.Categories[1].CategoryID != "groceries" || r.Categories[1].Revenue.String() != "3.75" {
		t.Errorf("Categories[1] = %+v, want groceries with revenue 3.75", r.Categories[1])
	}

	if r.Inventory.Registered != 2 || r.Inventory.LowStock != 1 || r.Inventory.OutOfStock != 1 {
		t.Errorf("Inventory = %+v, want 2 registered, 1 low, 1 out", r.Inventory)
	}
}

func TestNewSalesReport_EmptyPeriod(t *testing.T) {
	shop := newTestShop(t)

	r, err := shop.NewSalesReport(Daily, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalSales != 0 || !r.TotalRevenue.IsZero() || !r.AverageTicket.IsZero() {
		t.Errorf("empty report has non-zero stats: %+v", r)
	}
	if len(r.Sales) != 0 || len(r.TopProducts) != 0 {
		t.Errorf("empty report has entries: %+v", r)
	}
}
