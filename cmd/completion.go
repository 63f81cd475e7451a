package cmd

import (
	"flag"

	"github.com/etnz/badbets"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors suggests values for flags by name. Other flags take anything.
var flagPredictors = map[string]complete.Predictor{
	"ledger-file": predict.Files("*.json"),
	"config":      predict.Files("*.yaml"),
	"type":        predict.Set{"g", "o", "u"},
	"for":         predict.Set(badbets.TeamNames()),
	"against":     predict.Set(badbets.TeamNames()),
	"league":      predict.Set{"NBA", "NFL"},
	"won":         predict.Set{"yes", "no"},
	"placed":      predict.Set{"today"},
	"settles":     predict.Set{"today"},
	"p":           predict.Set{"day", "week", "month", "quarter", "year", "season"},
}

// Completion returns the shell completion of bb: its global flags, the
// commands with their flags, and ledger files as arguments.
func Completion() *complete.Command {
	c := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
		Args:  predict.Files("*.json"),
	}
	for _, command := range Commands {
		f := flag.NewFlagSet(command.Name(), flag.ContinueOnError)
		command.SetFlags(f)
		c.Sub[command.Name()] = &complete.Command{Flags: predictFlags(f)}
	}
	c.Sub["session"].Args = predict.Files("*.json")
	c.Sub["topic"].Args = predict.Set(topicNames())
	return c
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
