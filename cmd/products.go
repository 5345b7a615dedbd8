package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"minimarket"
	"minimarket/renderer"
)

// productsCmd holds the flags for the 'products' subcommand.
type productsCmd struct {
	query    string
	category string
	low      bool
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the products of the catalog" }
func (*productsCmd) Usage() string {
	return `mm products [-q <query>] [-c <category>] [-low]

  Lists the catalog. -q filters by a case-insensitive match on name or
  barcode, -c restricts to one category, and -low keeps only products at or
  below their low-stock threshold.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by name or barcode")
	f.StringVar(&c.category, "c", "", "Filter by category id")
	f.BoolVar(&c.low, "low", false, "Only products at or below their low-stock threshold")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := openShop()

	var products []minimarket.Product
	var err error
	if c.low {
		products, err = shop.LowStockProducts()
	} else {
		products, err = shop.SearchProducts(c.query, c.category)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Products(products, *currency))
	return subcommands.ExitSuccess
}
