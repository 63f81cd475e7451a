package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/badbets"
)

// SummaryMarkdown renders the record and the exposure of a ledger.
func SummaryMarkdown(s *badbets.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Betting Summary of %s\n\n", escape(s.Name))
	fmt.Fprintf(&b, "Period: %s\n\n", s.Range)

	fmt.Fprint(&b, "## Record\n\n")
	fmt.Fprintln(&b, "| Bets | Count | Won | Lost | Win Rate | Staked | Net | ROI |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	ConditionalBlock(&b, func(w io.Writer) bool {
		// per type detail is noise when there is only one type
		if len(s.ByType) < 2 {
			return false
		}
		for _, typ := range []badbets.BetType{badbets.HeadToHead, badbets.FutureOver, badbets.FutureUnder} {
			if rec, ok := s.ByType[typ]; ok {
				recordRow(w, typ.String(), rec)
			}
		}
		return true
	})
	recordRow(&b, "**Total**", s.Total)

	fmt.Fprint(&b, "\n## Exposure\n\n")
	fmt.Fprintln(&b, "| Outstanding | At Risk | To Win |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %d | %s | %s |\n", s.Outstanding, s.AtRisk, s.ToWin)
	return b.String()
}

func recordRow(w io.Writer, label string, r badbets.Record) {
	fmt.Fprintf(w, "| %s | %d | %d | %d | %s%% | %s | %s | %s%% |\n",
		label,
		r.Count(),
		r.Wins,
		r.Losses,
		r.WinRate().StringFixed(1),
		r.Staked,
		r.Net.SignedString(),
		r.ROI().StringFixed(1),
	)
}
