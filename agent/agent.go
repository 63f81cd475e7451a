package agent

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/etnz/badbets/prompt"
	"google.golang.org/genai"
)

// Agent is a chat session with a facilitator, who answers the user and
// consults the experts when needed.
type Agent struct {
	p           *prompt.Prompter
	Facilitator *Expert
	Experts     []*Expert
}

// New creates an Agent talking through p, whose facilitator uses model.
func New(p *prompt.Prompter, model string, experts ...*Expert) *Agent {
	return &Agent{
		p:           p,
		Experts:     experts,
		Facilitator: newFacilitator(model, experts...),
	}
}

// Start creates the chats of the experts, and the facilitator's last.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(slices.Clone(a.Experts), a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return nil
}

const userPrompt = "assist>"

// Run answers questions, first the given ones, then the user's until "bye" or
// the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, questions ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	a.p.Printf("Welcome to bb assist, ask anything about your bets. Type 'bye' to exit.\n")
	for {
		question, err := a.next(&questions)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(question) {
		case "":
			continue
		case "bye", "exit", "quit":
			return nil
		}

		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		a.p.Printf("%s\n", text(answer))
	}
}

// next pops the next pending question, echoing it, or reads one from the user.
func (a *Agent) next(pending *[]string) (string, error) {
	if len(*pending) == 0 {
		return a.p.Line(userPrompt)
	}
	q := strings.TrimSpace((*pending)[0])
	*pending = (*pending)[1:]
	if q != "" {
		a.p.Printf("%s\n%s\n", userPrompt, q)
	}
	return q, nil
}

// text concatenates the text parts of a content.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
