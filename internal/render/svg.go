// Package render produces the presentation artifacts for a calculation:
// the circular angle diagram as SVG, the adjustment summary, and a styled
// terminal rendering of the step trace.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/domain"
)

// DiagramConfig holds the geometry of the angle diagram.
type DiagramConfig struct {
	Width  float64
	Height float64
	Radius float64
}

// Diagram renders the shot-angle circle as an SVG document. The marker sits
// at (cx + r·cos a, cy − r·sin a); the y term is negated because the SVG
// y-axis grows downward. Cardinal labels carry the angle factor at each
// cardinal, and a red arc sweeps from 0° to the shot angle.
func Diagram(angle float64, cfg DiagramConfig) string {
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	r := cfg.Radius

	rad := angle * math.Pi / 180
	x2 := cx + r*math.Cos(rad)
	y2 := cy - r*math.Sin(rad)

	factor := domain.AngleFactor(angle)

	// Angle label sits right of the marker on the right half, left of it
	// on the left half so it stays inside the canvas.
	labelX := x2 + 10
	if x2 <= cx {
		labelX = x2 - 40
	}

	arcR := r * 2 / 3
	arcFlag := 0
	if angle > 180 {
		arcFlag = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`+"\n", cfg.Width, cfg.Height)
	fmt.Fprintf(&b, `  <rect width="%g" height="%g" fill="#f5f5f5" />`+"\n", cfg.Width, cfg.Height)
	fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="%g" fill="none" stroke="gray" stroke-width="1" />`+"\n", cx, cy, r)

	// axes
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="gray" stroke-width="1" />`+"\n", cx-r, cy, cx+r, cy)
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="gray" stroke-width="1" />`+"\n", cx, cy-r, cx, cy+r)

	// shot angle line
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="blue" stroke-width="3" />`+"\n", cx, cy, x2, y2)

	// cardinal labels with their angle factors
	fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="black">0° (1.0)</text>`+"\n", cx+r+10, cy+5)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="black">90° (0.1)</text>`+"\n", cx-5, cy-r-10)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="black">180° (1.0)</text>`+"\n", cx-r-35, cy+5)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="black">270° (0.1)</text>`+"\n", cx-5, cy+r+20)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" fill="blue">%g° (%.2f)</text>`+"\n", labelX, y2-10, angle, factor)

	// green tick marks at the four cardinals
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="green" stroke-width="3" />`+"\n", cx+r+2, cy, cx+r+8, cy)
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="green" stroke-width="3" />`+"\n", cx, cy-r-2, cx, cy-r-8)
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="green" stroke-width="3" />`+"\n", cx-r-2, cy, cx-r-8, cy)
	fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="green" stroke-width="3" />`+"\n", cx, cy+r+2, cx, cy+r+8)

	fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="5" fill="black" />`+"\n", cx, cy)
	fmt.Fprintf(&b, `  <circle cx="%g" cy="%g" r="5" fill="blue" />`+"\n", x2, y2)

	// angle arc from 0° to the shot angle
	fmt.Fprintf(&b, `  <path d="M %g, %g A %g %g 0 %d %d %g, %g" fill="none" stroke="red" stroke-width="2" />`+"\n",
		cx+arcR, cy, arcR, arcR, arcFlag, arcFlag,
		cx+arcR*math.Cos(rad), cy-arcR*math.Sin(rad))

	b.WriteString("</svg>\n")
	return b.String()
}
