// Package renderer turns ledgers and reports into markdown.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/badbets"
	"github.com/shopspring/decimal"
)

// Options holds what rendering needs beyond the data itself.
type Options struct {
	Currency string    // used to format stakes and results
	Now      time.Time // used to tell how ready outstanding bets are
}

func (o Options) money(d decimal.Decimal) badbets.Money { return badbets.M(d, o.Currency) }

// shortID returns the first characters of an id, enough to tell bets apart.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchup describes the teams of a bet.
func matchup(b badbets.Bet) string {
	switch b.Type {
	case badbets.HeadToHead:
		return fmt.Sprintf("%s vs %s (%s)", b.TeamFor.Franchise, b.TeamAgainst.Franchise, b.TeamFor.League)
	case badbets.FutureOver:
		return fmt.Sprintf("%s over (%s)", b.TeamFor.Franchise, b.TeamFor.League)
	case badbets.FutureUnder:
		return fmt.Sprintf("%s under (%s)", b.TeamAgainst.Franchise, b.TeamAgainst.League)
	default:
		return b.Type.String()
	}
}

// status describes where a bet stands at now.
func status(b badbets.Bet, now time.Time) string {
	if b.IsSettled() {
		if *b.Won {
			return "won"
		}
		return "lost"
	}
	switch r := badbets.Classify(b, now); r {
	case badbets.NotDue:
		return "pending"
	default:
		return r.String()
	}
}

// escape protects text from being read as table syntax.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
