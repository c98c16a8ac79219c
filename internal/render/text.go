package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	formulaStyle = lipgloss.NewStyle().Faint(true)
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// DirectionGlyphs returns the golfer/wind glyph line for a direction:
// the wind blows at the golfer for a headwind and from behind for a
// tailwind.
func DirectionGlyphs(d domain.WindDirection) string {
	if d == domain.Tailwind {
		return "💨 → 🏌️  Tailwind"
	}
	return "🏌️ → 💨  Headwind"
}

// Trace renders the full derivation for the terminal.
func Trace(trace domain.CalculationTrace, direction domain.WindDirection, summary Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("WGT Shot Calculator"))
	b.WriteString("\n")
	b.WriteString(DirectionGlyphs(direction))
	b.WriteString("\n\n")

	writeStep(&b, "Step 1  distance × wind", trace.Step1.Formula, trace.Step1.Result)
	fmt.Fprintf(&b, "%s %.4f\n", stepStyle.Render("Angle factor:"), trace.AngleFactor)
	writeStep(&b, "Step 2  divisor ÷ angle factor", trace.Step2.Formula, trace.Step2.Result)
	writeStep(&b, "Step 3  step 1 ÷ step 2", trace.Step3.Formula, trace.Step3.Result)
	writeStep(&b, "Step 4  apply to distance", trace.Step4.Formula, trace.Step4.Result)

	b.WriteString("\n")
	fmt.Fprintf(&b, "Original distance:  %.2f yards\n", summary.Original)
	fmt.Fprintf(&b, "Adjustment:         %.2f yards (%.1f%%)\n", summary.Difference, summary.PercentChange)
	b.WriteString(resultStyle.Render(fmt.Sprintf("Adjusted distance:  %.2f yards", summary.Adjusted)))
	b.WriteString("\n")

	return b.String()
}

func writeStep(b *strings.Builder, label, formula string, result float64) {
	fmt.Fprintf(b, "%s\n  %s = %.4f\n",
		stepStyle.Render(label),
		formulaStyle.Render(formula),
		result,
	)
}
