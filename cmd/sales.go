package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"minimarket"
	"minimarket/renderer"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	period string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of a period" }
func (*salesCmd) Usage() string {
	return `mm sales [-p <period>]

  Lists the sales committed inside the period (today, week, month, year).
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "today", "Predefined period (today, week, month, year)")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := minimarket.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	shop := openShop()
	sales, err := shop.Sales()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r := period.Range(time.Now())
	kept := sales[:0]
	for _, sale := range sales {
		if r.Contains(sale.Date) {
			kept = append(kept, sale)
		}
	}
	printMarkdown(renderer.Sales(kept, *currency))
	return subcommands.ExitSuccess
}
