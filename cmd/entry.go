package cmd

import (
	"fmt"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/prompt"
)

const dateHint = "Give date in mm/dd/yyyy or mm/dd/yy format (or enter t for today's date)"

// readBet asks for a new bet, one field at a time.
func readBet(p *prompt.Prompter, today date.Date) (badbets.Bet, error) {
	typ, err := prompt.Ask(p, "Game, Over team wins, or Under team wins? (g, o, or u)", badbets.ParseBetType)
	if err != nil {
		return badbets.Bet{}, err
	}
	teamFor, teamAgainst, err := readTeams(p, typ)
	if err != nil {
		return badbets.Bet{}, err
	}
	odds, err := prompt.Ask(p, "Odds? (Use American odds ie -110 or 200)", badbets.ParseOdds)
	if err != nil {
		return badbets.Bet{}, err
	}
	amount, err := prompt.Ask(p, "Bet Amount?", badbets.ParseStake)
	if err != nil {
		return badbets.Bet{}, err
	}
	parseDate := func(s string) (date.Date, error) { return parseDay(s, today) }
	placed, err := prompt.Ask(p, "Date placed?\n"+dateHint, parseDate)
	if err != nil {
		return badbets.Bet{}, err
	}
	settles, err := prompt.Ask(p, "Date to be settled (or already settled)?\n"+dateHint, func(s string) (date.Date, error) {
		d, err := parseDate(s)
		if err == nil && d.Before(placed) {
			return d, fmt.Errorf("%w: the bet cannot settle before %v, the day it was placed", badbets.ErrInvalid, placed)
		}
		return d, err
	})
	if err != nil {
		return badbets.Bet{}, err
	}
	return badbets.NewBet(typ, teamFor, teamAgainst, odds, amount, placed, settles)
}

// readTeams asks for the teams a bet type needs.
func readTeams(p *prompt.Prompter, typ badbets.BetType) (teamFor, teamAgainst badbets.Team, err error) {
	switch typ {
	case badbets.FutureOver:
		teamFor, err = prompt.Ask(p, "Team over?", badbets.ParseTeam)
		return
	case badbets.FutureUnder:
		teamAgainst, err = prompt.Ask(p, "Team under?", badbets.ParseTeam)
		return
	}
	for {
		if teamFor, err = prompt.Ask(p, "Team betting on?", badbets.ParseTeam); err != nil {
			return
		}
		if teamAgainst, err = prompt.Ask(p, "Team betting against?", badbets.ParseTeam); err != nil {
			return
		}
		switch {
		case badbets.Comparable(teamFor, teamAgainst):
			return
		case teamFor == teamAgainst:
			p.Printf("A team cannot play against itself\n")
		default:
			p.Printf("Teams must be in same league for head to head games\n")
		}
	}
}

// promptSettler asks the user for the results of due bets.
type promptSettler struct {
	p *prompt.Prompter
}

func (s promptSettler) Concluded(b badbets.Bet) (bool, error) {
	return s.p.YesNo("Has this bet settled yet: " + b.Description() + "?")
}

func (s promptSettler) Won(b badbets.Bet) (bool, error) {
	return s.p.YesNo("Did this bet win: " + b.Description() + "?")
}

// parseWon reads a bet result given on the command line: empty for
// outstanding, otherwise a yes or no.
func parseWon(s string) (*bool, error) {
	switch s {
	case "":
		return nil, nil
	case "y", "yes", "true", "won", "win":
		won := true
		return &won, nil
	case "n", "no", "false", "lost", "loss":
		won := false
		return &won, nil
	default:
		return nil, fmt.Errorf("%w: result %q, want yes or no", badbets.ErrInvalid, s)
	}
}

// parseDay parses a day typed by the user, "t" being today.
func parseDay(s string, today date.Date) (date.Date, error) {
	d, err := date.ParseInput(s, today)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %w", badbets.ErrInvalid, err)
	}
	return d, nil
}
