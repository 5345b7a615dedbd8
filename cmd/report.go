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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	period string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a sales report for a period" }
func (*reportCmd) Usage() string {
	return `mm report [-p <period>]

  Displays the sales of the period (today, week, month, year) with the best
  sellers, the revenue per category and an inventory summary.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period (today, week, month, year)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := minimarket.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	shop := openShop()
	report, err := shop.NewSalesReport(period, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	categories, err := shop.Categories()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Report(report, categories, *currency))
	return subcommands.ExitSuccess
}
