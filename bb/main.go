package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/badbets/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests, and exits, when bb is invoked by the shell to complete.
	cmd.Completion().Complete("bb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if err := cmd.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	args := flag.Args()
	switch {
	case len(args) == 0:
		// bb alone starts a session
		flag.CommandLine.Parse([]string{"session"})
	case isCommand(commander, args[0]):
	case cmd.HasExtension(args[0]):
		_, code := cmd.RunExtension(args[0], args[1:])
		os.Exit(code)
	case len(args) == 1:
		// bb <file> is a session on that file
		flag.CommandLine.Parse(append([]string{"session"}, args...))
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// isCommand reports whether name is a registered command.
func isCommand(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
