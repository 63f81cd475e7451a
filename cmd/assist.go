package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/badbets/agent"
	"github.com/etnz/badbets/prompt"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// EnvAPIKey holds the Gemini API key, possibly set in a .env file.
const EnvAPIKey = "GEMINI_API_KEY"

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string { return "review your bets with the AI assistant" }

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `bb assist [<question>]

  Start an interactive session with the AI assistant, which reads the ledger
  and can search for game results. It never changes the ledger.
  Needs the ` + EnvAPIKey + ` environment variable.
`
}

// SetFlags sets the flags for the command.
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return fail("%s is not set", EnvAPIKey)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return fail("loading ledger: %v", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fail("initializing Gemini's client: %v", err)
	}

	scout := agent.NewScout(settings.Model)
	bookmaker := agent.NewBookmaker(settings.Model, ledger, renderOptions())
	a := agent.New(prompt.New(stdin, stdout), settings.Model, scout, bookmaker)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail("agent failed: %v", err)
	}

	return subcommands.ExitSuccess
}
