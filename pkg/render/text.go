package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// visibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters count as 2.
func visibleLen(s string) int {
	return ansi.StringWidth(s)
}

// truncate cuts s to at most maxWidth cells, ending in an ellipsis when
// anything was dropped.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// padRight pads s with trailing spaces to width cells.
func padRight(s string, width int) string {
	vis := visibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}
