package renderer

import (
	"strings"
	"testing"
	"time"

	"minimarket"
)

func date(day, hour int) time.Time {
	return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
}

func price(s string) minimarket.Money {
	m, err := minimarket.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func wantContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q:\n%s", w, got)
		}
	}
}

func TestProducts(t *testing.T) {
	products := []minimarket.Product{
		{ID: "1", Name: "Cola 500ml", Category: "drinks", Price: price("2.50"), Stock: 50, MinStock: 10, Barcode: "7501055309123"},
		{ID: "2", Name: "White Rice 1kg", Category: "groceries", Price: price("3.20"), Stock: 5, MinStock: 8},
	}
	got := Products(products, "USD")
	wantContains(t, got,
		"# Products",
		"Cola 500ml", "$2.50", "7501055309123",
		"White Rice 1kg", "5 (low)",
		"2 products.",
	)
}

func TestProductsEmpty(t *testing.T) {
	got := Products(nil, "USD")
	wantContains(t, got, "No products registered.")
}

func TestCategories(t *testing.T) {
	categories := []minimarket.Category{
		{ID: "drinks", Name: "Drinks", Description: "Bottled and canned"},
		{ID: "groceries", Name: "Groceries"},
	}
	got := Categories(categories, map[string]int{"drinks": 3})
	wantContains(t, got, "# Categories", "Drinks", "Bottled and canned", "3", "Groceries")
}

func TestSalesAndReceipt(t *testing.T) {
	sale := minimarket.Sale{
		ID:            "0195f1a2-7c3d-7e4f-8a9b-0c1d2e3f4a5b",
		Items:         []minimarket.SaleItem{{ProductID: "1", ProductName: "Cola 500ml", Quantity: 3, UnitPrice: price("2.50"), Subtotal: price("7.50")}},
		Subtotal:      price("7.50"),
		Tax:           price("1.35"),
		Total:         price("8.85"),
		PaymentMethod: minimarket.PayCash,
		Date:          date(10, 14),
	}

	got := Sales([]minimarket.Sale{sale}, "USD")
	wantContains(t, got,
		"# Sales",
		"3f4a5b", // id tail
		"2025-03-10 14:00",
		"Walk-in",
		"$8.85",
		"1 sale.",
	)

	got = Receipt(sale, "USD")
	wantContains(t, got,
		"# Receipt 3f4a5b",
		"paid by cash",
		"Cola 500ml", "$2.50", "$7.50",
		"Tax (18%)", "$1.35", "$8.85",
	)
}

func TestMovements(t *testing.T) {
	products := []minimarket.Product{{ID: "1", Name: "Cola 500ml"}}
	movements := []minimarket.StockMovement{
		{ID: "m1", ProductID: "1", Type: minimarket.MovementIn, Quantity: 20, Reason: "delivery", Date: date(9, 8)},
		{ID: "m2", ProductID: "gone", Type: minimarket.MovementOut, Quantity: 2, Reason: "damaged", Date: date(9, 9)},
	}
	got := Movements(movements, products)
	wantContains(t, got,
		"# Stock Movements",
		"Cola 500ml", "delivery",
		"gone", "damaged", // deleted product falls back to the id
		"2 movements.",
	)
}

func TestDashboard(t *testing.T) {
	d := &minimarket.Dashboard{
		Stats: minimarket.DashboardStats{
			TotalProducts:    5,
			LowStockProducts: 1,
			TodaySales:       2,
			MonthSales:       4,
			TotalRevenue:     price("120.40"),
		},
		RecentSales: []minimarket.Sale{{ID: "abc123456", Total: price("8.85"), Date: date(10, 14), CustomerName: "Ana"}},
		LowStock:    []minimarket.Product{{Name: "White Rice 1kg", Stock: 5, MinStock: 8}},
	}
	got := Dashboard(d, "USD")
	wantContains(t, got,
		"# Dashboard",
		"Revenue this month", "$120.40",
		"## Recent Sales", "Ana", "$8.85",
		"## Low Stock", "White Rice 1kg",
	)
}

func TestDashboardEmpty(t *testing.T) {
	got := Dashboard(&minimarket.Dashboard{}, "USD")
	wantContains(t, got, "No sales yet.", "All products above their thresholds.")
}

func TestReport(t *testing.T) {
	r := &minimarket.SalesReport{
		Period:        minimarket.Monthly,
		Range:         minimarket.Range{From: date(1, 0), To: date(15, 12)},
		TotalSales:    3,
		TotalItems:    7,
		TotalRevenue:  price("20.36"),
		AverageTicket: price("6.79"),
		TopProducts:   []minimarket.ProductSales{{ProductID: "1", ProductName: "Cola 500ml", Quantity: 5, Revenue: price("12.50")}},
		Categories:    []minimarket.CategoryRevenue{{CategoryID: "drinks", Quantity: 5, Revenue: price("12.50")}},
		Inventory:     minimarket.InventorySummary{Registered: 5, LowStock: 1, OutOfStock: 0},
	}
	categories := []minimarket.Category{{ID: "drinks", Name: "Drinks"}}
	got := Report(r, categories, "USD")
	wantContains(t, got,
		"# Sales Report (month)",
		"2025-03-01 00:00 to 2025-03-15 12:00",
		"$20.36", "$6.79",
		"## Top Products", "Cola 500ml",
		"## By Category", "Drinks", "61.4%",
		"## Inventory",
	)
}
