package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"minimarket"
)

// Movements renders the stock movement log, one row per entry. Product names
// are resolved against the live catalog; entries whose product has been
// deleted fall back to the raw identifier.
func Movements(movements []minimarket.StockMovement, products []minimarket.Product) string {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Movements")
	if len(movements) == 0 {
		doc.PlainText("No movements recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		name, ok := names[m.ProductID]
		if !ok {
			name = m.ProductID
		}
		rows = append(rows, []string{
			when(m.Date),
			name,
			string(m.Type),
			fmt.Sprintf("%d", m.Quantity),
			m.Reason,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Product", "Type", "Qty", "Reason"},
		Rows:   rows,
	})
	doc.PlainText(count(len(movements), "movement.", "movements."))
	return doc.String()
}
