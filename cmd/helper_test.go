package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// setup points the commands to a ledger file in a temporary directory, feeds
// them input and captures their output. It returns the ledger path and the
// standard output.
func setup(t *testing.T, input string) (string, *bytes.Buffer) {
	t.Helper()
	t.Setenv(date.EnvTestingNow, "2024-02-14 18:00:00")

	oldSettings, oldPlain := settings, *plain
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	t.Cleanup(func() {
		settings, *plain = oldSettings, oldPlain
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})

	path := filepath.Join(t.TempDir(), "ledger.json")
	settings = DefaultConfig()
	settings.LedgerFile = path
	*plain = true

	out := new(bytes.Buffer)
	stdin = strings.NewReader(input)
	stdout = out
	stderr = new(bytes.Buffer)
	return path, out
}

// execute runs a fresh command with args.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// errOutput returns what was printed on stderr since setup.
func errOutput() string { return stderr.(*bytes.Buffer).String() }

// writeLedger saves a ledger of Jane with bets settling on the 13th, 14th
// and on March 1st of 2024.
func writeLedger(t *testing.T, path string) {
	t.Helper()
	l := badbets.NewLedger("Jane")
	lakers, _ := badbets.ResolveTeam("Lakers")
	celtics, _ := badbets.ResolveTeam("Celtics")
	for id, settles := range map[string]string{
		"old0001": "2024-02-13",
		"today01": "2024-02-14",
		"later01": "2024-03-01",
	} {
		b, err := badbets.NewBet(badbets.HeadToHead, lakers, celtics, -110, decimal.NewFromInt(20), date.New(2024, 1, 1), date.MustParse(settles))
		if err != nil {
			t.Fatal(err)
		}
		b.ID = id
		if _, err := l.Insert(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := badbets.SaveLedger(path, l); err != nil {
		t.Fatal(err)
	}
}

func readLedger(t *testing.T, path string) *badbets.Ledger {
	t.Helper()
	l, err := badbets.LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger(%q): %v", path, err)
	}
	return l
}
