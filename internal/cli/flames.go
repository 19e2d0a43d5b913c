package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/flames"
	"github.com/charmbracelet/lipgloss"
)

// RenderOutcome renders a FLAMES result for terminal output. The trace is
// listed when showSteps is set.
func RenderOutcome(name1, name2 string, outcome flames.Outcome, showSteps bool) string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(TokenColor(outcome.Color))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", SubtleStyle.Render(fmt.Sprintf("%s + %s", name1, name2)))
	fmt.Fprintf(&b, "%s %s\n", outcome.Icon, accent.Render(outcome.Category.String()))
	b.WriteString(outcome.Description)

	if showSteps {
		b.WriteString("\n\n")
		b.WriteString(BoldStyle.Render("Calculation steps"))
		for i, step := range outcome.Trace {
			fmt.Fprintf(&b, "\n%d. %s", i+1, step)
		}
	}

	return RenderBox(FlameIcon+" FLAMES result", b.String())
}
