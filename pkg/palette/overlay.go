package palette

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content, starting at (anchorX, anchorY) in screen coordinates.
// Truncation is ANSI-aware, so escape sequences in the underlying view
// survive on both sides of the overlay. Overlay lines falling outside
// the view are dropped rather than extending it.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for i, overlayLine := range overlayLines {
		row := anchorY + i
		if row < 0 || row >= len(viewLines) {
			continue
		}

		base := viewLines[row]
		baseWidth := ansi.StringWidth(base)

		var spliced strings.Builder
		if anchorX > 0 {
			spliced.WriteString(ansi.Truncate(base, anchorX, ""))
		}
		// Reset around the overlay so styles from the underlying view
		// cannot bleed into it, and vice versa.
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		if resume := anchorX + overlayWidth; resume < baseWidth {
			spliced.WriteString(ansi.TruncateLeft(base, resume, ""))
		}

		viewLines[row] = spliced.String()
	}

	return strings.Join(viewLines, "\n")
}
