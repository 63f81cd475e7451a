package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/google/subcommands"
)

func TestAdd(t *testing.T) {
	path, out := setup(t, "")

	status := execute(t, &addCmd{}, "-type", "g", "-for", "Lakers", "-against", "Celtics", "-odds", "-110", "-amount", "20", "-placed", "02/01/24", "-settles", "02/14/24")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success; stderr:\n%s", status, errOutput())
	}
	if !strings.Contains(out.String(), "NBA:Lakers over NBA:Celtics at -110, 20.00 staked on 2024-02-01, settles 2024-02-14") {
		t.Errorf("add output:\n%s", out.String())
	}

	status = execute(t, &addCmd{}, "-type", "o", "-for", "niners", "-odds", "450", "-amount", "10", "-placed", "09/01/23", "-settles", "02/11/24", "-won", "yes")
	if status != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success; stderr:\n%s", status, errOutput())
	}

	l := readLedger(t, path)
	if l.OutstandingLen() != 1 || l.SettledLen() != 1 {
		t.Errorf("ledger has %d outstanding and %d settled bets, want 1 and 1", l.OutstandingLen(), l.SettledLen())
	}
}

func TestAddInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing odds", []string{"-for", "Lakers", "-against", "Celtics", "-amount", "20", "-settles", "t"}},
		{"small odds", []string{"-for", "Lakers", "-against", "Celtics", "-odds", "50", "-amount", "20", "-settles", "t"}},
		{"unknown team", []string{"-for", "Martians", "-against", "Celtics", "-odds", "-110", "-amount", "20", "-settles", "t"}},
		{"different leagues", []string{"-for", "Lakers", "-against", "Cowboys", "-odds", "-110", "-amount", "20", "-settles", "t"}},
		{"over with two teams", []string{"-type", "o", "-for", "Lakers", "-against", "Celtics", "-odds", "-110", "-amount", "20", "-settles", "t"}},
		{"settles before placed", []string{"-for", "Lakers", "-against", "Celtics", "-odds", "-110", "-amount", "20", "-placed", "t", "-settles", "01/01/24"}},
		{"bad result", []string{"-for", "Lakers", "-against", "Celtics", "-odds", "-110", "-amount", "20", "-settles", "t", "-won", "maybe"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, _ := setup(t, "")
			if status := execute(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("add %v = %v, want usage error", tc.args, status)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("ledger was written: %v", err)
			}
		})
	}
}

func TestAddInvalidDates(t *testing.T) {
	today := date.New(2024, 2, 14)
	for _, tc := range []struct{ placed, settles string }{
		{"t", "13/45/24"},
		{"t", ""},
		{"02/30/24", "t"},
		{"yesterday", "t"},
	} {
		c := &addCmd{betType: "g", teamFor: "Lakers", against: "Celtics", odds: "-110", amount: "20", placed: tc.placed, settles: tc.settles}
		if _, err := c.bet(today); !errors.Is(err, badbets.ErrInvalid) {
			t.Errorf("bet() with -placed %q -settles %q = %v, want ErrInvalid", tc.placed, tc.settles, err)
		}
	}
}

func TestSettleByID(t *testing.T) {
	path, out := setup(t, "")
	writeLedger(t, path)

	if status := execute(t, &settleCmd{}, "-id", "later", "-won", "no"); status != subcommands.ExitSuccess {
		t.Fatalf("settle = %v, want success; stderr:\n%s", status, errOutput())
	}
	if !strings.Contains(out.String(), "Settled NBA:Lakers over NBA:Celtics") {
		t.Errorf("settle output:\n%s", out.String())
	}
	b, _ := readLedger(t, path).Bet("later01")
	if b.Won == nil || *b.Won {
		t.Errorf("later01 = %+v, want lost", b)
	}

	if status := execute(t, &settleCmd{}, "-id", "later01", "-won", "yes"); status != subcommands.ExitFailure {
		t.Errorf("settling twice = %v, want failure", status)
	}
	if status := execute(t, &settleCmd{}, "-id", "nope", "-won", "yes"); status != subcommands.ExitFailure {
		t.Errorf("settling an unknown bet = %v, want failure", status)
	}
	if status := execute(t, &settleCmd{}, "-id", "old"); status != subcommands.ExitUsageError {
		t.Errorf("settle without -won = %v, want usage error", status)
	}
	if status := execute(t, &settleCmd{}, "-won", "yes"); status != subcommands.ExitUsageError {
		t.Errorf("settle without -id = %v, want usage error", status)
	}
}

func TestSettleInteractive(t *testing.T) {
	t.Run("end of input keeps results", func(t *testing.T) {
		path, out := setup(t, "n\n")
		writeLedger(t, path)
		// old0001 is overdue, so the first question is whether it won
		if status := execute(t, &settleCmd{}); status != subcommands.ExitSuccess {
			t.Fatalf("settle = %v, want success", status)
		}
		if !strings.Contains(out.String(), "1 bet(s) settled") {
			t.Errorf("settle output:\n%s", out.String())
		}
		l := readLedger(t, path)
		if l.SettledLen() != 1 {
			t.Errorf("SettledLen() = %d, want 1", l.SettledLen())
		}
	})
	t.Run("stop on decline", func(t *testing.T) {
		path, out := setup(t, "y\nn\n")
		writeLedger(t, path)
		if status := execute(t, &settleCmd{}, "-stop-on-decline"); status != subcommands.ExitSuccess {
			t.Fatalf("settle = %v, want success", status)
		}
		if strings.Contains(out.String(), "No more bets to settle!") {
			t.Errorf("today01 is still due:\n%s", out.String())
		}
		l := readLedger(t, path)
		if b, _ := l.Bet("today01"); b.Won != nil || l.SettledLen() != 1 {
			t.Errorf("today01 = %+v, SettledLen() = %d, want outstanding and 1", b, l.SettledLen())
		}
	})
	t.Run("all settled", func(t *testing.T) {
		path, out := setup(t, "y\ny\ny\n")
		writeLedger(t, path)
		if status := execute(t, &settleCmd{}); status != subcommands.ExitSuccess {
			t.Fatalf("settle = %v, want success", status)
		}
		if !strings.Contains(out.String(), "2 bet(s) settled\nNo more bets to settle!") {
			t.Errorf("settle output:\n%s", out.String())
		}
	})
	t.Run("missing ledger", func(t *testing.T) {
		setup(t, "")
		if status := execute(t, &settleCmd{}); status != subcommands.ExitFailure {
			t.Errorf("settle = %v, want failure", status)
		}
	})
}

func TestListAndDue(t *testing.T) {
	path, out := setup(t, "")
	writeLedger(t, path)

	if status := execute(t, &listCmd{}, "-outstanding"); status != subcommands.ExitSuccess {
		t.Fatalf("list = %v, want success", status)
	}
	if got := out.String(); !strings.Contains(got, "## Outstanding Bets") || strings.Contains(got, "## Settled Bets") {
		t.Errorf("list -outstanding output:\n%s", got)
	}
	if status := execute(t, &listCmd{}, "-outstanding", "-settled"); status != subcommands.ExitUsageError {
		t.Errorf("list with both filters = %v, want usage error", status)
	}

	out.Reset()
	if status := execute(t, &dueCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("due = %v, want success", status)
	}
	got := out.String()
	for _, want := range []string{"# Bets to Settle on 2024-02-14", "old0001", "today01", "overdue", "settling today"} {
		if !strings.Contains(got, want) {
			t.Errorf("due output does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "later01") {
		t.Errorf("due output lists a bet not due:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	path, out := setup(t, "")
	writeLedger(t, path)

	if status := execute(t, &summaryCmd{}, "-p", "month"); status != subcommands.ExitSuccess {
		t.Fatalf("summary = %v, want success; stderr:\n%s", status, errOutput())
	}
	if got := out.String(); !strings.Contains(got, "# Betting Summary of Jane") || !strings.Contains(got, "2024-02-01") {
		t.Errorf("summary output:\n%s", got)
	}
	if status := execute(t, &summaryCmd{}, "-p", "fortnight"); status != subcommands.ExitUsageError {
		t.Errorf("summary with unknown period = %v, want usage error", status)
	}
}

func TestTeams(t *testing.T) {
	_, out := setup(t, "")
	if status := execute(t, &teamsCmd{}, "-league", "nfl"); status != subcommands.ExitSuccess {
		t.Fatalf("teams = %v, want success; stderr:\n%s", status, errOutput())
	}
	if got := out.String(); !strings.Contains(got, "Niners") || strings.Contains(got, "Lakers") {
		t.Errorf("teams output:\n%s", got)
	}
	if status := execute(t, &teamsCmd{}, "-league", "NHL"); status != subcommands.ExitUsageError {
		t.Errorf("teams -league NHL = %v, want usage error", status)
	}
}

func TestQuery(t *testing.T) {
	path, _ := setup(t, "")
	writeLedger(t, path)
	l := readLedger(t, path)

	tests := []struct {
		path string
		want string
	}{
		{"$.name", "Jane"},
		{"$.bets_outstanding[0].id", "old0001"},
		{"$.bets_outstanding[0].odds", "-110"},
		{"$.bets_settled", "[]"},
	}
	for _, tc := range tests {
		got, err := query(l, tc.path)
		if err != nil {
			t.Errorf("query(%q): %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("query(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
	if _, err := query(l, "$.nope["); err == nil {
		t.Errorf("query of an invalid path succeeded")
	}
}

func TestFmt(t *testing.T) {
	path, _ := setup(t, "")
	doc := `{"name":"Jane","bets_outstanding":[{"bet_type":"HeadToHead","team_for":{"NBA":"Lakers"},"team_against":{"NBA":"Celtics"},"odds":-110,"bet_amount":20,"date_placed":"2024-1-1","date_settled":"2024-2-14","won":true}],"bets_settled":[]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if status := execute(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt = %v, want success; stderr:\n%s", status, errOutput())
	}
	l := readLedger(t, path)
	if l.OutstandingLen() != 0 || l.SettledLen() != 1 {
		t.Errorf("ledger has %d outstanding and %d settled bets, want 0 and 1", l.OutstandingLen(), l.SettledLen())
	}
	for b := range l.Settled() {
		if b.ID == "" {
			t.Errorf("formatted bet has no id")
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"date_settled": "2024-02-14"`) {
		t.Errorf("formatted ledger:\n%s", data)
	}
}
