package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bb fmt

  Validates and formats the ledger file. This command reads all bets, validates them,
  gives an id to bets without one, files each bet by its result, sorts them by
  settlement date and writes them back in place.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("could not load ledger: %v", err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return fail("%v", err)
	}
	fmt.Fprintf(stderr, "Formatted %s: %d outstanding and %d settled bets\n", settings.LedgerPath(), ledger.OutstandingLen(), ledger.SettledLen())
	return subcommands.ExitSuccess
}
