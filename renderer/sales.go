package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"minimarket"
)

// Sales renders a list of sales, one row per transaction.
func Sales(sales []minimarket.Sale, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales")
	if len(sales) == 0 {
		doc.PlainText("No sales in this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		items := 0
		for _, it := range s.Items {
			items += it.Quantity
		}
		rows = append(rows, []string{
			shortID(s.ID),
			when(s.Date),
			customer(s.CustomerName),
			fmt.Sprintf("%d", items),
			string(s.PaymentMethod),
			money(s.Total, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Sale", "Date", "Customer", "Items", "Payment", "Total"},
		Rows:   rows,
	})
	doc.PlainText(count(len(sales), "sale.", "sales."))
	return doc.String()
}

// Receipt renders a single committed sale as a printable ticket.
func Receipt(sale minimarket.Sale, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Receipt " + shortID(sale.ID))
	doc.PlainText(fmt.Sprintf("%s, %s, paid by %s", when(sale.Date), customer(sale.CustomerName), sale.PaymentMethod))

	rows := make([][]string, 0, len(sale.Items))
	for _, it := range sale.Items {
		rows = append(rows, []string{
			it.ProductName,
			fmt.Sprintf("%d", it.Quantity),
			money(it.UnitPrice, currency),
			money(it.Subtotal, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Product", "Qty", "Unit", "Subtotal"},
		Rows:   rows,
	})

	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Subtotal", money(sale.Subtotal, currency)},
			{"Tax (18%)", money(sale.Tax, currency)},
			{"**Total**", "**" + money(sale.Total, currency) + "**"},
		},
	})
	return doc.String()
}
