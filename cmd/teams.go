package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/renderer"
	"github.com/google/subcommands"
)

type teamsCmd struct {
	league string
}

func (*teamsCmd) Name() string     { return "teams" }
func (*teamsCmd) Synopsis() string { return "list the known teams" }
func (*teamsCmd) Usage() string {
	return `bb teams [-league <NBA|NFL>]

  Lists the team names accepted when entering bets, with their aliases.
`
}

func (c *teamsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.league, "league", "", "Only list the teams of this league.")
}

func (c *teamsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	leagues := badbets.Leagues()
	if c.league != "" {
		league := badbets.League(strings.ToUpper(c.league))
		if badbets.Franchises(league) == nil {
			fmt.Fprintf(stderr, "Error: unknown league %q\n", c.league)
			return subcommands.ExitUsageError
		}
		leagues = []badbets.League{league}
	}
	printMarkdown(renderer.TeamsMarkdown(leagues))
	return subcommands.ExitSuccess
}
