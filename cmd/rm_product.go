package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmProductCmd struct{}

func (*rmProductCmd) Name() string     { return "rm-product" }
func (*rmProductCmd) Synopsis() string { return "delete a product" }
func (*rmProductCmd) Usage() string {
	return `mm rm-product <id>

  Deletes the product with the given id. Past sales keep the name and price
  they recorded at sale time.
`
}

func (c *rmProductCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	shop := openShop()
	if err := shop.DeleteProduct(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted product %q\n", id)
	return subcommands.ExitSuccess
}
