package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/badbets"
)

// DueMarkdown renders the bets ready to be settled.
func DueMarkdown(dues []badbets.Due, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bets to Settle on %s\n\n", opts.Now.Format("2006-01-02"))
	if len(dues) == 0 {
		fmt.Fprintln(&b, "No more bets to settle!")
		return b.String()
	}
	fmt.Fprintln(&b, "| Id | Bet | Odds | Stake | To Win | Settles | Status |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|:---|")
	for _, due := range dues {
		fmt.Fprintf(&b, "| %s | %s | %+d | %s | %s | %s | %s |\n",
			shortID(due.ID),
			matchup(due.Bet),
			due.Odds,
			opts.money(due.Amount),
			opts.money(due.Profit()),
			due.Settles,
			due.Readiness,
		)
	}
	return b.String()
}
