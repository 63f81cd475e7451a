package cmd

import (
	"context"
	"flag"

	"github.com/etnz/badbets/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `bb topic [-list] [<topic>...]

Show documentation for the given topics, '*' for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the topics with their titles.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		index, err := docs.Index()
		if err != nil {
			return fail("reading doc: %v", err)
		}
		printMarkdown(index)
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("reading doc: %v", err)
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// topicNames lists the topics for completion.
func topicNames() []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
