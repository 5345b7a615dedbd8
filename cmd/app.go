// Package cmd implements the CLI application to run a small shop.
package cmd

import (
	"flag"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"minimarket"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "shop")
	c.Register(&dashboardCmd{}, "shop")
	c.Register(&reportCmd{}, "shop")

	c.Register(&categoriesCmd{}, "catalog")
	c.Register(&addCategoryCmd{}, "catalog")
	c.Register(&rmCategoryCmd{}, "catalog")
	c.Register(&productsCmd{}, "catalog")
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&rmProductCmd{}, "catalog")

	c.Register(&stockCmd{}, "inventory")
	c.Register(&movementsCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")

	c.Register(&topicCmd{}, "")
}

// Environment variables mirroring the global flags. They provide defaults
// for the flags and are forwarded to extension processes.
const (
	EnvDataDir  = "MM_DATA_DIR"
	EnvCurrency = "MM_CURRENCY"
	EnvVerbose  = "MM_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", envOr(EnvDataDir, ".mm"), "Directory holding the shop data files")
var currency = flag.String("currency", envOr(EnvCurrency, "USD"), "ISO 4217 currency code used to display amounts")
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Enable verbose logging")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// openShop is the central function to open the shop database.
func openShop() *minimarket.Shop {
	return minimarket.Open(*dataDir)
}
