package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"minimarket/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	watch int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the shop at a glance" }
func (*dashboardCmd) Usage() string {
	return `mm dashboard [-w n]

  Displays the number of products, today's and this month's sales, the
  month's revenue, the most recent sales and the products running low.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.watch, "w", 0, "Run every n seconds")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := openShop()
	for {
		dashboard, err := shop.NewDashboard(time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.Dashboard(dashboard, *currency))

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
