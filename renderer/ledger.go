package renderer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/etnz/badbets"
)

// LedgerMarkdown renders both collections of a ledger.
func LedgerMarkdown(l *badbets.Ledger, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bets of %s\n\n", escape(l.Name()))
	b.WriteString(OutstandingMarkdown(l.Outstanding(), opts))
	b.WriteString("\n")
	b.WriteString(SettledMarkdown(l.Settled(), opts))
	return b.String()
}

// OutstandingMarkdown renders outstanding bets, in the order given.
func OutstandingMarkdown(bets iter.Seq[badbets.Bet], opts Options) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Outstanding Bets\n\n")
	printed := false
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Id | Bet | Odds | Stake | To Win | Placed | Settles | Status |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|---:|:---|:---|:---|")
		for bet := range bets {
			printed = true
			fmt.Fprintf(w, "| %s | %s | %+d | %s | %s | %s | %s | %s |\n",
				shortID(bet.ID),
				matchup(bet),
				bet.Odds,
				opts.money(bet.Amount),
				opts.money(bet.Profit()),
				bet.Placed,
				bet.Settles,
				status(bet, opts.Now),
			)
		}
		return printed
	})
	if !printed {
		fmt.Fprintln(&b, "None")
	}
	return b.String()
}

// SettledMarkdown renders settled bets, in the order given.
func SettledMarkdown(bets iter.Seq[badbets.Bet], opts Options) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Settled Bets\n\n")
	printed := false
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Id | Bet | Odds | Stake | Placed | Settled | Result | Net |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|:---|:---|:---|---:|")
		for bet := range bets {
			printed = true
			fmt.Fprintf(w, "| %s | %s | %+d | %s | %s | %s | %s | %s |\n",
				shortID(bet.ID),
				matchup(bet),
				bet.Odds,
				opts.money(bet.Amount),
				bet.Placed,
				bet.Settles,
				status(bet, opts.Now),
				opts.money(bet.Result()).SignedString(),
			)
		}
		return printed
	})
	if !printed {
		fmt.Fprintln(&b, "None")
	}
	return b.String()
}
