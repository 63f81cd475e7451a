package cmd

import (
	"context"
	"flag"

	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
)

type dueCmd struct{}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "list the bets ready to be settled" }
func (*dueCmd) Usage() string {
	return `bb due

  Lists the outstanding bets that are overdue or settling today, without changing anything.
`
}

func (*dueCmd) SetFlags(f *flag.FlagSet) {}

func (*dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("%v", err)
	}
	opts := renderOptions()
	printMarkdown(renderer.DueMarkdown(ledger.Due(opts.Now), opts))
	return subcommands.ExitSuccess
}
