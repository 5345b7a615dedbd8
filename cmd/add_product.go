package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"minimarket"
)

// addProductCmd holds the flags for the 'add-product' subcommand.
type addProductCmd struct {
	id          string
	name        string
	category    string
	price       string
	stock       int
	minStock    int
	barcode     string
	description string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "create or update a product" }
func (*addProductCmd) Usage() string {
	return `mm add-product -name <name> -c <category> -price <amount> [-id <id>] [-stock n] [-min n] [-barcode <code>] [-desc <description>]

  Creates a product, or replaces the one with the same id. Price, stock and
  the low-stock threshold must be non-negative.

Usage Examples:
# Register a new drink with 24 units on hand.
$ mm add-product -name "Orange Juice 1L" -c drinks -price 3.80 -stock 24 -min 6
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id (defaults to a generated one)")
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.category, "c", "", "Category id")
	f.StringVar(&c.price, "price", "0", "Unit price, e.g. 2.50")
	f.IntVar(&c.stock, "stock", 0, "Units on hand")
	f.IntVar(&c.minStock, "min", 0, "Low-stock threshold")
	f.StringVar(&c.barcode, "barcode", "", "Barcode (EAN/UPC)")
	f.StringVar(&c.description, "desc", "", "Product description")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := minimarket.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	shop := openShop()
	saved, err := shop.SaveProduct(minimarket.Product{
		ID:          c.id,
		Name:        c.name,
		Category:    c.category,
		Price:       price,
		Stock:       c.stock,
		MinStock:    c.minStock,
		Barcode:     c.barcode,
		Description: c.description,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if minimarket.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved product %q (%s)\n", saved.Name, saved.ID)
	return subcommands.ExitSuccess
}
