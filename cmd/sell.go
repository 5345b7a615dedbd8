package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"minimarket"
	"minimarket/renderer"
)

// saleLine is one -i argument: a product reference and a quantity.
type saleLine struct {
	ref string // product id or barcode
	qty int
}

// saleLines collects repeated -i flags.
type saleLines []saleLine

func (l *saleLines) String() string {
	parts := make([]string, 0, len(*l))
	for _, line := range *l {
		parts = append(parts, fmt.Sprintf("%s:%d", line.ref, line.qty))
	}
	return strings.Join(parts, ",")
}

// Set parses "<id>[:<qty>]". The quantity defaults to 1.
func (l *saleLines) Set(s string) error {
	ref, qtyStr, found := strings.Cut(s, ":")
	if ref == "" {
		return fmt.Errorf("empty product reference in %q", s)
	}
	qty := 1
	if found {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return fmt.Errorf("invalid quantity in %q: %v", s, err)
		}
		qty = n
	}
	*l = append(*l, saleLine{ref: ref, qty: qty})
	return nil
}

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	items    saleLines
	payment  string
	customer string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "commit a sale and print the receipt" }
func (*sellCmd) Usage() string {
	return `mm sell -i <product>[:<qty>] [-i ...] [-pay <method>] [-customer <name>]

  Commits a sale. Each -i names a product by id or barcode, with an optional
  quantity (default 1). Quantities are capped at the available stock, the
  18% tax is applied on the subtotal, and the product stock is decremented.

Usage Examples:
# Sell three colas and one bag of rice, paid by card.
$ mm sell -i 1:3 -i 2 -pay card
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.items, "i", "Product to sell, as <id>[:<qty>] (repeatable)")
	f.StringVar(&c.payment, "pay", "cash", "Payment method (cash, card, transfer)")
	f.StringVar(&c.customer, "customer", "", "Customer name (optional)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to sell, use -i to add products")
		return subcommands.ExitUsageError
	}
	method, err := minimarket.ParsePaymentMethod(c.payment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	shop := openShop()

	var items []minimarket.SaleItem
	for _, line := range c.items {
		product, ok, err := shop.Product(line.ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !ok {
			product, ok, err = shop.FindBarcode(line.ref)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no product with id or barcode %q\n", line.ref)
			return subcommands.ExitFailure
		}
		if product.Stock == 0 {
			fmt.Fprintf(os.Stderr, "Skipping %q: out of stock\n", product.Name)
			continue
		}
		items = minimarket.AddItem(items, product, line.qty)
	}

	sale, err := shop.CommitSale(items, method, c.customer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if minimarket.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Receipt(sale, *currency))
	return subcommands.ExitSuccess
}
