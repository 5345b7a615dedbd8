package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"minimarket"
)

// stockCmd holds the flags for the 'stock' subcommand.
type stockCmd struct {
	productID string
	typ       string
	quantity  int
	reason    string
	userID    string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "record a stock movement" }
func (*stockCmd) Usage() string {
	return `mm stock -p <product> -t <type> -q <quantity> [-r <reason>] [-user <id>]

  Records a stock movement and applies it to the product. Type "in" adds
  units, "out" removes them (the stock never goes below zero), and
  "adjustment" adds the quantity on top of the current stock.

Usage Examples:
# A delivery of 20 colas.
$ mm stock -p 1 -t in -q 20 -r "weekly delivery"
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.productID, "p", "", "Product id (required)")
	f.StringVar(&c.typ, "t", "", "Movement type (in, out, adjustment)")
	f.IntVar(&c.quantity, "q", 0, "Quantity, a positive number of units")
	f.StringVar(&c.reason, "r", "", "Reason for the movement (required)")
	f.StringVar(&c.userID, "user", "", "Identifier of the person recording the movement")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := minimarket.ParseMovementType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	shop := openShop()
	movement, err := shop.RecordMovement(c.productID, typ, c.quantity, c.reason, c.userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if minimarket.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	product, ok, err := shop.Product(c.productID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if ok {
		fmt.Printf("Recorded %s of %d for %q, stock is now %d\n", movement.Type, movement.Quantity, product.Name, product.Stock)
	} else {
		fmt.Printf("Recorded %s of %d for unknown product %q\n", movement.Type, movement.Quantity, c.productID)
	}
	return subcommands.ExitSuccess
}
