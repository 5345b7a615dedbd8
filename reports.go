package minimarket

import (
	"sort"
	"time"
)

// DashboardStats is the at-a-glance summary of the shop's current state.
type DashboardStats struct {
	TotalProducts    int
	LowStockProducts int
	TodaySales       int
	MonthSales       int
	TotalRevenue     Money // revenue of the current month
}

// Dashboard bundles the stats with the lists displayed next to them.
type Dashboard struct {
	Stats       DashboardStats
	RecentSales []Sale    // last five sales, newest first
	LowStock    []Product // first five products at or below their threshold
}

// NewDashboard computes the dashboard as of now.
func (s *Shop) NewDashboard(now time.Time) (*Dashboard, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales()
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	d := &Dashboard{}
	d.Stats.TotalProducts = len(products)
	for _, sale := range sales {
		if sameDay(sale.Date, now) {
			d.Stats.TodaySales++
		}
		if !sale.Date.Before(monthStart) {
			d.Stats.MonthSales++
			d.Stats.TotalRevenue = d.Stats.TotalRevenue.Add(sale.Total)
		}
	}
	for _, p := range products {
		if p.Low() {
			d.Stats.LowStockProducts++
			if len(d.LowStock) < 5 {
				d.LowStock = append(d.LowStock, p)
			}
		}
	}
	for i := len(sales) - 1; i >= 0 && len(d.RecentSales) < 5; i-- {
		d.RecentSales = append(d.RecentSales, sales[i])
	}
	return d, nil
}

// ProductSales aggregates the sales of one product over a report period,
// keyed by the name snapshot carried in the sale items.
type ProductSales struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     Money
}

// CategoryRevenue aggregates the period revenue of one category.
type CategoryRevenue struct {
	CategoryID string
	Quantity   int
	Revenue    Money
}

// InventorySummary counts the catalog by stock health.
type InventorySummary struct {
	Registered int
	LowStock   int
	OutOfStock int
}

// SalesReport is the aggregate view of the sales inside one period.
type SalesReport struct {
	Period        Period
	Range         Range
	Sales         []Sale // sales inside the period, oldest first
	TotalSales    int
	TotalRevenue  Money
	TotalItems    int
	AverageTicket Money
	TopProducts   []ProductSales    // five best sellers by quantity
	Categories    []CategoryRevenue // per-category revenue, insertion order of the catalog
	Inventory     InventorySummary
}

// NewSalesReport computes the report for the period ending at now.
//
// Category aggregation resolves each sold item against the live catalog;
// items whose product was deleted since the sale still count in the totals
// but not in any category row, mirroring how the data is displayed.
func (s *Shop) NewSalesReport(period Period, now time.Time) (*SalesReport, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales()
	if err != nil {
		return nil, err
	}

	r := &SalesReport{Period: period, Range: period.Range(now)}

	byProduct := make(map[string]*ProductSales)
	byCategory := make(map[string]*CategoryRevenue)
	productCategory := make(map[string]string)
	var categoryOrder []string
	for _, p := range products {
		productCategory[p.ID] = p.Category
		if _, ok := byCategory[p.Category]; !ok {
			byCategory[p.Category] = &CategoryRevenue{CategoryID: p.Category}
			categoryOrder = append(categoryOrder, p.Category)
		}
	}

	for _, sale := range sales {
		if !r.Range.Contains(sale.Date) {
			continue
		}
		r.Sales = append(r.Sales, sale)
		r.TotalSales++
		r.TotalRevenue = r.TotalRevenue.Add(sale.Total)
		for _, item := range sale.Items {
			r.TotalItems += item.Quantity
			ps, ok := byProduct[item.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = ps
			}
			ps.Quantity += item.Quantity
			ps.Revenue = ps.Revenue.Add(item.Subtotal)

			if cat, ok := productCategory[item.ProductID]; ok {
				cr := byCategory[cat]
				cr.Quantity += item.Quantity
				cr.Revenue = cr.Revenue.Add(item.Subtotal)
			}
		}
	}

	if r.TotalSales > 0 {
		r.AverageTicket = r.TotalRevenue.Div(r.TotalSales).round2()
	}

	for _, ps := range byProduct {
		r.TopProducts = append(r.TopProducts, *ps)
	}
	sort.SliceStable(r.TopProducts, func(i, j int) bool {
		return r.TopProducts[i].Quantity > r.TopProducts[j].Quantity
	})
	if len(r.TopProducts) > 5 {
		r.TopProducts = r.TopProducts[:5]
	}

	for _, cat := range categoryOrder {
		r.Categories = append(r.Categories, *byCategory[cat])
	}

	r.Inventory.Registered = len(products)
	for _, p := range products {
		if p.Low() {
			r.Inventory.LowStock++
		}
		if p.Stock == 0 {
			r.Inventory.OutOfStock++
		}
	}
	return r, nil
}
