package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/badbets"
	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger" }
func (*queryCmd) Usage() string {
	return `bb query <jsonpath>

  Evaluates a JSONPath expression on the ledger document and prints the result as JSON.
  Strings are printed raw. See 'bb topic ledger' for the document structure.

Usage Examples:
$ bb query '$.name'
$ bb query '$.bets_settled[?(@.won == true)].odds'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: query takes exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return fail("%v", err)
	}
	result, err := query(ledger, f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(stdout, result)
	return subcommands.ExitSuccess
}

// query evaluates path on the ledger document, as it is saved.
func query(ledger *badbets.Ledger, path string) (string, error) {
	var buf bytes.Buffer
	if err := badbets.EncodeLedger(&buf, ledger); err != nil {
		return "", err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return "", err
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
