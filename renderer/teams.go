package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/badbets"
)

// TeamsMarkdown renders the franchises of the given leagues with their aliases.
func TeamsMarkdown(leagues []badbets.League) string {
	var b strings.Builder
	for i, league := range leagues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", league)
		fmt.Fprintln(&b, "| Team | Also Known As |")
		fmt.Fprintln(&b, "|:---|:---|")
		for _, team := range badbets.Franchises(league) {
			fmt.Fprintf(&b, "| %s | %s |\n", team.Franchise, strings.Join(team.Aliases(), ", "))
		}
	}
	return b.String()
}
