package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/prompt"
	"github.com/google/subcommands"
)

type settleCmd struct {
	id            string
	won           string
	stopOnDecline bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "record the results of due bets" }
func (*settleCmd) Usage() string {
	return `bb settle [-stop-on-decline] | -id <id> -won <yes|no>

  Without -id, asks for the result of each due bet, earliest first, and saves the ledger.
  With -id, settles that single bet, due or not. The id can be shortened to any unique prefix.
  See 'bb topic settle'.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id, or id prefix, of the bet to settle.")
	f.StringVar(&c.won, "won", "", "Result of the bet given by -id: yes or no.")
	f.BoolVar(&c.stopOnDecline, "stop-on-decline", false, "End the pass on the first bet of the day that has not settled yet.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && c.won != "" {
		fmt.Fprintln(stderr, "Error: -won needs -id.")
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("%v", err)
	}

	if c.id != "" {
		won, err := parseWon(c.won)
		if err != nil || won == nil {
			fmt.Fprintln(stderr, "Error: -id needs -won yes or -won no.")
			return subcommands.ExitUsageError
		}
		b, err := ledger.Lookup(c.id)
		if err != nil {
			return fail("%v", err)
		}
		if b, err = ledger.Settle(b.ID, *won); err != nil {
			return fail("%v", err)
		}
		if err := EncodeLedger(ledger); err != nil {
			return fail("%v", err)
		}
		fmt.Fprintf(stdout, "Settled %s\n", b.Description())
		return subcommands.ExitSuccess
	}

	p := prompt.New(stdin, stdout)
	opts := badbets.SettleOptions{StopOnDecline: c.stopOnDecline || settings.StopOnDecline}
	now := date.Now()
	n, err := ledger.SettleDue(now, promptSettler{p}, opts)
	if n > 0 {
		// keep the results given before a failure
		if err := EncodeLedger(ledger); err != nil {
			return fail("%v", err)
		}
		p.Printf("%d bet(s) settled\n", n)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fail("%v", err)
	}
	if len(ledger.Due(now)) == 0 {
		p.Printf("No more bets to settle!\n")
	}
	return subcommands.ExitSuccess
}
