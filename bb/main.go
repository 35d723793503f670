package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bankbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("bb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	commander.Register(subcommands.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	account := map[string]complete.Predictor{
		"id":       predict.Something,
		"password": predict.Nothing,
	}
	mutation := map[string]complete.Predictor{
		"id":       predict.Something,
		"amount":   predict.Something,
		"password": predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"create": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"deposit":  predict.Something,
				"password": predict.Nothing,
			}},
			"balance":  {Flags: account},
			"deposit":  {Flags: mutation},
			"withdraw": {Flags: mutation},
			"history": {Flags: map[string]complete.Predictor{
				"id":       predict.Something,
				"password": predict.Nothing,
				"head":     predict.Something,
			}},
			"menu": {},
		},
		Flags: map[string]complete.Predictor{
			"accounts-file":     predict.Files("*.txt"),
			"transactions-file": predict.Files("*.txt"),
			"currency":          predict.Something,
			"v":                 predict.Nothing,
		},
	}
}
