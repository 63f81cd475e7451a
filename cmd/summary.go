package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the betting record and exposure" }
func (*summaryCmd) Usage() string {
	return `bb summary [-p <period>] [-d <date>]

  Displays the win/loss record, the amount staked and the net result of the settled bets,
  and what is at risk in outstanding bets.

  With -p, only the bets settled in the period (day, week, month, quarter, year or season)
  containing the date -d (today by default) are counted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Period to report on: day, week, month, quarter or year. All time by default.")
	f.StringVar(&c.date, "d", "t", "A day within the period. See 'bb topic dates'.")
}

// dateRange returns the range selected by the flags.
func (c *summaryCmd) dateRange(today date.Date) (date.Range, error) {
	if c.period == "" {
		return date.Range{}, nil
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, err
	}
	on, err := date.ParseInput(c.date, today)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(on, p), nil
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.dateRange(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.SummaryMarkdown(badbets.NewSummary(ledger, r, settings.Currency)))
	return subcommands.ExitSuccess
}
