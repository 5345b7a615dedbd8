package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"minimarket/renderer"
)

// movementsCmd holds the flags for the 'movements' subcommand.
type movementsCmd struct {
	tail int
}

func (*movementsCmd) Name() string     { return "movements" }
func (*movementsCmd) Synopsis() string { return "display the stock movement log" }
func (*movementsCmd) Usage() string {
	return `mm movements [-tail n]

  Displays the stock movement log, oldest first. -tail keeps only the last
  n entries.
`
}

func (c *movementsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Only show the last n movements (0 shows all)")
}

func (c *movementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := openShop()
	movements, err := shop.Movements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	products, err := shop.Products()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.tail > 0 && len(movements) > c.tail {
		movements = movements[len(movements)-c.tail:]
	}
	printMarkdown(renderer.Movements(movements, products))
	return subcommands.ExitSuccess
}
