package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type addCmd struct {
	betType string
	teamFor string
	against string
	odds    string
	amount  string
	placed  string
	settles string
	won     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a bet to the ledger" }
func (*addCmd) Usage() string {
	return `bb add -type <g|o|u> [-for <team>] [-against <team>] -odds <odds> -amount <stake> [-placed <date>] -settles <date> [-won <yes|no>]

  Adds a bet to the ledger without asking questions. The ledger is created if needed.

  A game (g) needs both -for and -against, an over bet (o) only -for and an under bet (u) only -against.
  Dates accept the formats described in 'bb topic dates'. Use -won to record a bet already settled.

Usage Examples:
$ bb add -type g -for Lakers -against Celtics -odds -110 -amount 20 -settles 02/14/24
$ bb add -type o -for Niners -odds 450 -amount 10 -placed 09/01/23 -settles 02/11/24 -won yes
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.betType, "type", "g", "Bet type: g for a game, o for over, u for under.")
	f.StringVar(&c.teamFor, "for", "", "Team betting on, for games and over bets.")
	f.StringVar(&c.against, "against", "", "Team betting against, for games and under bets.")
	f.StringVar(&c.odds, "odds", "", "American odds, like -110 or 200.")
	f.StringVar(&c.amount, "amount", "", "Stake.")
	f.StringVar(&c.placed, "placed", "t", "Day the bet was placed.")
	f.StringVar(&c.settles, "settles", "", "Day the outcome is known.")
	f.StringVar(&c.won, "won", "", "Result of a bet already settled: yes or no.")
}

// bet builds the bet described by the flags.
func (c *addCmd) bet(today date.Date) (badbets.Bet, error) {
	typ, err := badbets.ParseBetType(c.betType)
	if err != nil {
		return badbets.Bet{}, err
	}
	var teamFor, teamAgainst badbets.Team
	if c.teamFor != "" {
		if teamFor, err = badbets.ParseTeam(c.teamFor); err != nil {
			return badbets.Bet{}, err
		}
	}
	if c.against != "" {
		if teamAgainst, err = badbets.ParseTeam(c.against); err != nil {
			return badbets.Bet{}, err
		}
	}
	odds, err := badbets.ParseOdds(c.odds)
	if err != nil {
		return badbets.Bet{}, err
	}
	amount, err := badbets.ParseStake(c.amount)
	if err != nil {
		return badbets.Bet{}, err
	}
	placed, err := parseDay(c.placed, today)
	if err != nil {
		return badbets.Bet{}, fmt.Errorf("-placed: %w", err)
	}
	settles, err := parseDay(c.settles, today)
	if err != nil {
		return badbets.Bet{}, fmt.Errorf("-settles: %w", err)
	}
	won, err := parseWon(c.won)
	if err != nil {
		return badbets.Bet{}, err
	}
	b, err := badbets.NewBet(typ, teamFor, teamAgainst, odds, amount, placed, settles)
	if err != nil {
		return badbets.Bet{}, err
	}
	b.Won = won
	return b, nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.bet(date.Today())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeOrNewLedger()
	if err != nil {
		return fail("%v", err)
	}
	if b, err = ledger.Insert(b); err != nil {
		return fail("%v", err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return fail("%v", err)
	}
	logger.Debug("bet added", zap.String("id", b.ID))
	fmt.Fprintf(stdout, "Added %s: %s\n", b.ID, b.Description())
	return subcommands.ExitSuccess
}
