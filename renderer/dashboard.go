package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"minimarket"
)

// Dashboard renders the at-a-glance shop summary: headline stats, the most
// recent sales, and the products running low.
func Dashboard(d *minimarket.Dashboard, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Products", fmt.Sprintf("%d", d.Stats.TotalProducts)},
			{"Low stock", fmt.Sprintf("%d", d.Stats.LowStockProducts)},
			{"Sales today", fmt.Sprintf("%d", d.Stats.TodaySales)},
			{"Sales this month", fmt.Sprintf("%d", d.Stats.MonthSales)},
			{"Revenue this month", money(d.Stats.TotalRevenue, currency)},
		},
	})

	doc.H2("Recent Sales")
	if len(d.RecentSales) == 0 {
		doc.PlainText("No sales yet.")
	} else {
		rows := make([][]string, 0, len(d.RecentSales))
		for _, s := range d.RecentSales {
			rows = append(rows, []string{
				shortID(s.ID),
				when(s.Date),
				customer(s.CustomerName),
				money(s.Total, currency),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Sale", "Date", "Customer", "Total"},
			Rows:   rows,
		})
	}

	doc.H2("Low Stock")
	if len(d.LowStock) == 0 {
		doc.PlainText("All products above their thresholds.")
	} else {
		rows := make([][]string, 0, len(d.LowStock))
		for _, p := range d.LowStock {
			rows = append(rows, []string{p.Name, fmt.Sprintf("%d", p.Stock), fmt.Sprintf("%d", p.MinStock)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Product", "Stock", "Min"},
			Rows:   rows,
		})
	}
	return doc.String()
}
