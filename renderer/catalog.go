package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"minimarket"
)

// Products renders the product catalog to a markdown table.
func Products(products []minimarket.Product, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")
	if len(products) == 0 {
		doc.PlainText("No products registered.")
		return doc.String()
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		if p.Low() {
			stock += " (low)"
		}
		rows = append(rows, []string{p.ID, p.Name, p.Category, money(p.Price, currency), stock, p.Barcode})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Category", "Price", "Stock", "Barcode"},
		Rows:   rows,
	})
	doc.PlainText(count(len(products), "product.", "products."))
	return doc.String()
}

// Categories renders the category list with per-category product counts.
func Categories(categories []minimarket.Category, counts map[string]int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	if len(categories) == 0 {
		doc.PlainText("No categories registered.")
		return doc.String()
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ID, c.Name, c.Description, fmt.Sprintf("%d", counts[c.ID])})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Description", "Products"},
		Rows:   rows,
	})
	return doc.String()
}
