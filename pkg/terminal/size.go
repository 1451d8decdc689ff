// Package terminal answers the two questions the arrangement CLI asks of
// its environment: how big is the viewport, and may output be coloured.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// ErrInvalidViewport is returned by ParseViewport for malformed input.
var ErrInvalidViewport = errors.New("invalid viewport")

// DefaultViewport is used when nothing else reports a size.
var DefaultViewport = geometry.Size{Width: 80, Height: 24}

// Viewport returns the current terminal dimensions in cells. It tries, in
// order:
//  1. the terminal on stdout
//  2. the terminal on stderr (in case stdout is redirected)
//  3. COLUMNS/LINES environment variables
//  4. DefaultViewport
func Viewport() geometry.Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeFromFd(f.Fd()); ok {
			return s
		}
	}
	return viewportFromEnv()
}

// ViewportFromFd returns the size of the terminal on fd, falling back to the
// environment and then DefaultViewport.
func ViewportFromFd(fd uintptr) geometry.Size {
	if s, ok := sizeFromFd(fd); ok {
		return s
	}
	return viewportFromEnv()
}

func sizeFromFd(fd uintptr) (geometry.Size, bool) {
	if !term.IsTerminal(fd) {
		return geometry.Size{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return geometry.Size{}, false
	}
	return geometry.NewSize(w, h), true
}

// viewportFromEnv reads COLUMNS/LINES, falling back to DefaultViewport per
// dimension.
func viewportFromEnv() geometry.Size {
	return geometry.NewSize(
		envInt("COLUMNS", DefaultViewport.Width),
		envInt("LINES", DefaultViewport.Height),
	)
}

// envInt reads an integer from the named environment variable. Returns
// the fallback value if the variable is unset, empty, or not a valid
// positive integer.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ParseViewport parses "WIDTHxHEIGHT", for example "120x40".
func ParseViewport(s string) (geometry.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return geometry.Size{}, fmt.Errorf("terminal: %q: %w", s, ErrInvalidViewport)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w < 0 || h < 0 {
		return geometry.Size{}, fmt.Errorf("terminal: %q: %w", s, ErrInvalidViewport)
	}
	return geometry.NewSize(w, h), nil
}
