// Package cmd implements the bb command line application to keep a betting ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands lists all the bb subcommands.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&addCmd{},
	&listCmd{},
	&dueCmd{},
	&settleCmd{},
	&summaryCmd{},
	&teamsCmd{},
	&queryCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file. Overrides the configuration file.")
	configFile = flag.String("config", DefaultConfigFile, "Path to the YAML configuration file.")
	Verbose    = flag.Bool("v", false, "Log details on stderr.")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of styled text.")
)

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings is the configuration in effect, set by Init.
var settings = DefaultConfig()

// logger is set by Init.
var logger = zap.NewNop()

// Init prepares the application once the global flags are parsed: it sets up
// logging, reads the .env file and the configuration file.
func Init() error {
	l, err := newLogger(*Verbose)
	if err != nil {
		return err
	}
	logger = l
	loadEnv()

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	settings = cfg
	logger.Debug("configuration loaded",
		zap.String("config", *configFile),
		zap.String("ledger_file", settings.LedgerPath()),
		zap.String("currency", settings.Currency),
	)
	return nil
}

// DecodeLedger loads the configured ledger.
// The error wraps fs.ErrNotExist when the ledger file does not exist.
func DecodeLedger() (*badbets.Ledger, error) {
	l, err := badbets.LoadLedger(settings.LedgerPath())
	if err != nil {
		return nil, err
	}
	logger.Debug("ledger loaded",
		zap.String("path", settings.LedgerPath()),
		zap.Int("outstanding", l.OutstandingLen()),
		zap.Int("settled", l.SettledLen()),
	)
	return l, nil
}

// DecodeOrNewLedger loads the configured ledger, or returns an empty one when
// the file does not exist yet.
func DecodeOrNewLedger() (*badbets.Ledger, error) {
	l, err := DecodeLedger()
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("ledger does not exist, starting an empty one", zap.String("path", settings.LedgerPath()))
		return badbets.NewLedger(settings.Name), nil
	}
	return l, err
}

// EncodeLedger saves the ledger to the configured ledger file.
func EncodeLedger(l *badbets.Ledger) error {
	return encodeLedgerTo(settings.LedgerPath(), l)
}

func encodeLedgerTo(path string, l *badbets.Ledger) error {
	if err := badbets.SaveLedger(path, l); err != nil {
		return err
	}
	logger.Debug("ledger saved", zap.String("path", path))
	return nil
}

// renderOptions returns the rendering options for the configuration in effect.
func renderOptions() renderer.Options {
	return renderer.Options{Currency: settings.Currency, Now: date.Now()}
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
