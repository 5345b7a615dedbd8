package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"minimarket"
)

// addCategoryCmd holds the flags for the 'add-category' subcommand.
type addCategoryCmd struct {
	id          string
	name        string
	description string
	color       string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create or update a category" }
func (*addCategoryCmd) Usage() string {
	return `mm add-category -name <name> [-id <id>] [-desc <description>] [-color <hex>]

  Creates a category, or updates the one with the same id. When -id is
  omitted it is derived from the name (e.g. "Personal Care" becomes
  "personal-care").

Usage Examples:
# Create a category for frozen goods.
$ mm add-category -name "Frozen Goods" -color "#60a5fa"
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id (defaults to a slug of the name)")
	f.StringVar(&c.name, "name", "", "Category name (required)")
	f.StringVar(&c.description, "desc", "", "Category description")
	f.StringVar(&c.color, "color", "", "Display color, e.g. \"#3b82f6\"")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := openShop()
	saved, err := shop.SaveCategory(minimarket.Category{
		ID:          c.id,
		Name:        c.name,
		Description: c.description,
		Color:       c.color,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if minimarket.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved category %q (%s)\n", saved.Name, saved.ID)
	return subcommands.ExitSuccess
}
