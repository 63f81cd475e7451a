package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// printMarkdown prints md styled for the terminal, or raw with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		logger.Warn("cannot style markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn("cannot style markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
