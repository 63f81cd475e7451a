package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	outstanding bool
	settled     bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the bets of the ledger" }
func (*listCmd) Usage() string {
	return `bb list [-outstanding | -settled]

  Lists the bets in settlement date order, outstanding bets first.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.outstanding, "outstanding", false, "List only the outstanding bets.")
	f.BoolVar(&c.settled, "settled", false, "List only the settled bets.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.outstanding && c.settled {
		fmt.Fprintln(stderr, "Error: -outstanding and -settled cannot be used together.")
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("%v", err)
	}
	opts := renderOptions()
	switch {
	case c.outstanding:
		printMarkdown(renderer.OutstandingMarkdown(ledger.Outstanding(), opts))
	case c.settled:
		printMarkdown(renderer.SettledMarkdown(ledger.Settled(), opts))
	default:
		printMarkdown(renderer.LedgerMarkdown(ledger, opts))
	}
	return subcommands.ExitSuccess
}
