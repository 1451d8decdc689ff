// Package render turns composed scenes into something a person can read:
// a box drawing of every region, a placement table, or JSON and YAML
// documents.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/scene"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

type cell struct {
	text  string // "" marks the right half of a wide character
	color lipgloss.Color
}

// Canvas is a fixed-size grid of cells that items are painted onto in
// order, later items covering earlier ones.
type Canvas struct {
	size     geometry.Size
	cells    []cell
	renderer *lipgloss.Renderer

	// Selected is the id of an element drawn with a heavy border.
	Selected string
	// Theme colours items by placement.
	Theme theme.Theme
}

// NewCanvas creates a blank canvas. A nil renderer writes plain text.
func NewCanvas(size geometry.Size, r *lipgloss.Renderer) *Canvas {
	if r == nil {
		r = lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
	}
	c := &Canvas{size: size, renderer: r, cells: make([]cell, size.Area()), Theme: theme.Default()}
	c.Clear()
	return c
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{text: " "}
	}
}

// Paint draws every item in order.
func (c *Canvas) Paint(items []scene.Item) {
	for _, it := range items {
		color := c.Theme.DepthColor(it.Depth)
		switch {
		case it.Element.ID == c.Selected:
			color = lipgloss.Color(c.Theme.Selected)
		case it.Layering.IsDock():
			color = lipgloss.Color(c.Theme.Dock)
		case it.Layering.IsSplit():
			color = lipgloss.Color(c.Theme.Split)
		}
		border := lipgloss.RoundedBorder()
		if it.Element.ID == c.Selected {
			border = lipgloss.ThickBorder()
		}
		c.Box(it.Region, it.Element.ID, border, color)
	}
}

// Box draws region with a border and a label on its top edge, clearing the
// interior. Regions one cell high show only the label. Anything outside the
// canvas is clipped.
func (c *Canvas) Box(r geometry.Region, label string, b lipgloss.Border, color lipgloss.Color) {
	if r.IsEmpty() {
		return
	}
	framed := r.Width >= 2 && r.Height >= 2

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch := " "
			if framed {
				ch = borderRune(b, r, x, y)
			} else if r.Width == 1 && r.Height > 1 {
				ch = b.Left
			}
			c.set(x, y, ch, color)
		}
	}

	switch {
	case framed:
		c.text(r.X+1, r.Y, truncate(label, r.Width-2), color)
	case r.Height == 1:
		c.text(r.X, r.Y, truncate(label, r.Width), color)
	}
}

func borderRune(b lipgloss.Border, r geometry.Region, x, y int) string {
	top, bottom := y == r.Y, y == r.Bottom()-1
	left, right := x == r.X, x == r.Right()-1
	switch {
	case top && left:
		return b.TopLeft
	case top && right:
		return b.TopRight
	case bottom && left:
		return b.BottomLeft
	case bottom && right:
		return b.BottomRight
	case top:
		return b.Top
	case bottom:
		return b.Bottom
	case left:
		return b.Left
	case right:
		return b.Right
	}
	return " "
}

// text writes s starting at (x, y), one grapheme per cell.
func (c *Canvas) text(x, y int, s string, color lipgloss.Color) {
	for _, r := range s {
		ch := string(r)
		w := visibleLen(ch)
		if w == 0 {
			continue
		}
		c.set(x, y, ch, color)
		if w == 2 {
			c.set(x+1, y, "", color)
		}
		x += w
	}
}

func (c *Canvas) set(x, y int, text string, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.size.Width || y >= c.size.Height {
		return
	}
	c.cells[y*c.size.Width+x] = cell{text: text, color: color}
}

// String renders the canvas, one line per row, colouring runs of cells
// that share a colour.
func (c *Canvas) String() string {
	plain := c.renderer.ColorProfile() == termenv.Ascii
	var out strings.Builder
	for y := range c.size.Height {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.size.Width : (y+1)*c.size.Width]
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if plain || runColor == "" {
				out.WriteString(run.String())
			} else {
				out.WriteString(c.renderer.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteString(cl.text)
		}
		flush()
	}
	return out.String()
}
