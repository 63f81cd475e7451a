package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/prompt"
	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive session on a ledger" }
func (*sessionCmd) Usage() string {
	return `bb session [<file>]

  Starts an interactive session: add, list and settle bets, then save.

  Without a file, the session works on the ledger given by -ledger-file or the
  configuration file. Without any of them, it starts a new ledger saved to temp.json.
  A ledger file that does not exist can be created.

  'bb <file>' is a shortcut for 'bb session <file>'.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: session takes at most one ledger file")
		return subcommands.ExitUsageError
	}
	p := prompt.New(stdin, stdout)
	p.Printf("Welcome to Bad Bets!\n")

	var (
		path   string
		ledger *badbets.Ledger
		err    error
	)
	switch {
	case f.NArg() == 1:
		path = f.Arg(0)
		ledger, err = openLedger(p, path)
	case settings.LedgerFile != "":
		path = settings.LedgerFile
		ledger, err = openLedger(p, path)
	default:
		path = DefaultLedgerFile
		p.Printf("Creating new profile. Will save to %s\n", path)
		ledger, err = newLedger(p)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, errDeclined) {
		return subcommands.ExitFailure
	}
	if err != nil {
		return fail("%v", err)
	}

	s := &session{p: p, ledger: ledger}
	if err := s.run(); err != nil && !errors.Is(err, io.EOF) {
		return fail("%v", err)
	}

	save, err := p.YesNo("Save?")
	if err != nil || !save {
		return subcommands.ExitSuccess
	}
	if err := encodeLedgerTo(path, ledger); err != nil {
		return fail("%v", err)
	}
	p.Printf("Saved to %s\n", path)
	return subcommands.ExitSuccess
}

var errDeclined = errors.New("declined")

// openLedger loads the ledger at path, offering to create it when missing.
func openLedger(p *prompt.Prompter, path string) (*badbets.Ledger, error) {
	ledger, err := badbets.LoadLedger(path)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	logger.Debug("ledger not found", zap.String("path", path))

	create, err := p.YesNo(fmt.Sprintf("Create %s as new file?", path))
	if err != nil {
		return nil, err
	}
	if !create {
		return nil, errDeclined
	}
	return newLedger(p)
}

// newLedger returns an empty ledger for the configured name, asking for it if
// there is none.
func newLedger(p *prompt.Prompter) (*badbets.Ledger, error) {
	name := settings.Name
	if name == "" {
		var err error
		if name, err = p.Line("Name?"); err != nil {
			return nil, err
		}
	}
	return badbets.NewLedger(name), nil
}

// session runs the interactive loop on a ledger.
type session struct {
	p      *prompt.Prompter
	ledger *badbets.Ledger
}

// run asks for actions until the user quits. It returns io.EOF at the end of
// the input.
func (s *session) run() error {
	for {
		line, err := s.p.Line("Please input your action (Add, List, Settle, Summary, Quit):")
		if err != nil {
			return err
		}
		switch badbets.ParseAction(line) {
		case badbets.Quit:
			return nil
		case badbets.AddBet:
			err = s.add()
		case badbets.ListBets:
			printMarkdown(renderer.LedgerMarkdown(s.ledger, renderOptions()))
		case badbets.SettleBets:
			err = s.settle()
		case badbets.ShowSummary:
			printMarkdown(renderer.SummaryMarkdown(badbets.NewSummary(s.ledger, date.Range{}, settings.Currency)))
		case badbets.Continue:
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) add() error {
	b, err := readBet(s.p, date.Today())
	if errors.Is(err, badbets.ErrInvalid) {
		// every field was checked, only cross field rules remain
		s.p.Printf("Bet not added: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	b, err = s.ledger.Insert(b)
	if err != nil {
		s.p.Printf("Bet not added: %v\n", err)
		return nil
	}
	logger.Debug("bet added", zap.String("id", b.ID))
	s.p.Printf("Added %s\n", b.Description())
	return nil
}

func (s *session) settle() error {
	now := date.Now()
	n, err := s.ledger.SettleDue(now, promptSettler{s.p}, badbets.SettleOptions{StopOnDecline: settings.StopOnDecline})
	if n > 0 {
		s.p.Printf("%d bet(s) settled\n", n)
	}
	if err != nil {
		return err
	}
	if len(s.ledger.Due(now)) == 0 {
		s.p.Printf("No more bets to settle!\n")
	}
	return nil
}
