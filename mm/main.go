// Command mm runs a small shop from the terminal: a product catalog, a
// stock ledger and a sales register stored as JSON files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"minimarket/cmd"
)

func main() {
	// Shell completion runs and exits before anything else when the shell
	// asks for it.
	comp := completion()
	comp.Complete("mm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall through to mm-<name> extension binaries.
	if args := flag.Args(); len(args) > 0 && !known(comp, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// known reports whether name is a built-in subcommand. The completion tree
// lists them all, plus the help commands the commander registers itself.
func known(comp *complete.Command, name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	_, ok := comp.Sub[name]
	return ok
}

func completion() *complete.Command {
	periods := predict.Set{"today", "week", "month", "year"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "MXN", "COP", "PEN"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init":       {},
			"categories": {},
			"add-category": {Flags: map[string]complete.Predictor{
				"id":    predict.Nothing,
				"name":  predict.Nothing,
				"desc":  predict.Nothing,
				"color": predict.Nothing,
			}},
			"rm-category": {},
			"products": {Flags: map[string]complete.Predictor{
				"q":   predict.Nothing,
				"c":   predict.Nothing,
				"low": predict.Nothing,
			}},
			"add-product": {Flags: map[string]complete.Predictor{
				"id":      predict.Nothing,
				"name":    predict.Nothing,
				"c":       predict.Nothing,
				"price":   predict.Nothing,
				"stock":   predict.Nothing,
				"min":     predict.Nothing,
				"barcode": predict.Nothing,
				"desc":    predict.Nothing,
			}},
			"rm-product": {},
			"sell": {Flags: map[string]complete.Predictor{
				"i":        predict.Nothing,
				"pay":      predict.Set{"cash", "card", "transfer"},
				"customer": predict.Nothing,
			}},
			"sales": {Flags: map[string]complete.Predictor{"p": periods}},
			"stock": {Flags: map[string]complete.Predictor{
				"p":    predict.Nothing,
				"t":    predict.Set{"in", "out", "adjustment"},
				"q":    predict.Nothing,
				"r":    predict.Nothing,
				"user": predict.Nothing,
			}},
			"movements": {Flags: map[string]complete.Predictor{"tail": predict.Nothing}},
			"dashboard": {Flags: map[string]complete.Predictor{"w": predict.Nothing}},
			"report":    {Flags: map[string]complete.Predictor{"p": periods}},
			"topic":     {Args: predict.Set{"quickstart", "selling", "stock", "reporting", "storage", "readme", "*"}},
		},
	}
}
