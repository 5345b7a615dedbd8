package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCategoryCmd struct{}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "delete a category" }
func (*rmCategoryCmd) Usage() string {
	return `mm rm-category <id>

  Deletes the category with the given id. A category that still has
  products assigned to it cannot be deleted; reassign or delete the
  products first.
`
}

func (c *rmCategoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one category id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	shop := openShop()
	deleted, err := shop.DeleteCategory(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "Category %q was not deleted: products are still assigned to it\n", id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted category %q\n", id)
	return subcommands.ExitSuccess
}
