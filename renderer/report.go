package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"minimarket"
)

// Report renders a period sales report: totals, best sellers, per-category
// revenue and the inventory summary.
func Report(r *minimarket.SalesReport, categories []minimarket.Category, currency string) string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales Report (%s)", r.Period))
	doc.PlainText(fmt.Sprintf("%s to %s", when(r.Range.From), when(r.Range.To)))

	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Sales", fmt.Sprintf("%d", r.TotalSales)},
			{"Items sold", fmt.Sprintf("%d", r.TotalItems)},
			{"Revenue", money(r.TotalRevenue, currency)},
			{"Average ticket", money(r.AverageTicket, currency)},
		},
	})

	doc.H2("Top Products")
	if len(r.TopProducts) == 0 {
		doc.PlainText("No products sold in this period.")
	} else {
		rows := make([][]string, 0, len(r.TopProducts))
		for _, p := range r.TopProducts {
			rows = append(rows, []string{p.ProductName, fmt.Sprintf("%d", p.Quantity), money(p.Revenue, currency)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Product", "Qty", "Revenue"},
			Rows:   rows,
		})
	}

	doc.H2("By Category")
	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		name, ok := names[c.CategoryID]
		if !ok {
			name = c.CategoryID
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", c.Quantity), money(c.Revenue, currency), c.Revenue.Share(r.TotalRevenue)})
	}
	if len(rows) == 0 {
		doc.PlainText("No categories in the catalog.")
	} else {
		doc.Table(md.TableSet{
			Header: []string{"Category", "Qty", "Revenue", "Share"},
			Rows:   rows,
		})
	}

	doc.H2("Inventory")
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Registered", fmt.Sprintf("%d", r.Inventory.Registered)},
			{"Low stock", fmt.Sprintf("%d", r.Inventory.LowStock)},
			{"Out of stock", fmt.Sprintf("%d", r.Inventory.OutOfStock)},
		},
	})
	return doc.String()
}
