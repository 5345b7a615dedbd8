package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the data directory and seed the default catalog" }
func (*initCmd) Usage() string {
	return `mm init

  Creates the data directory and seeds the default categories and sample
  products. Collections that already hold data are left untouched, so the
  command is safe to run again.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := openShop()
	if err := shop.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Shop initialized in %s\n", *dataDir)
	return subcommands.ExitSuccess
}
