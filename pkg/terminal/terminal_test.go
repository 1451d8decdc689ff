package terminal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
)

// tempFile returns a regular file, which is never a terminal.
func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestViewportFromFdFallsBackToEnv(t *testing.T) {
	f := tempFile(t)
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")

	if got, want := ViewportFromFd(f.Fd()), geometry.NewSize(132, 43); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestViewportFromFdDefaults(t *testing.T) {
	f := tempFile(t)
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "bogus")

	if got := ViewportFromFd(f.Fd()); got != DefaultViewport {
		t.Errorf("got %v, want %v", got, DefaultViewport)
	}
}

func TestEnvInt(t *testing.T) {
	tests := map[string]struct {
		value string
		want  int
	}{
		"unset":    {value: "", want: 7},
		"valid":    {value: "42", want: 42},
		"zero":     {value: "0", want: 7},
		"negative": {value: "-3", want: 7},
		"garbage":  {value: "abc", want: 7},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("ARRANGE_TEST_INT", tt.value)
			if got := envInt("ARRANGE_TEST_INT", 7); got != tt.want {
				t.Errorf("envInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseViewport(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    geometry.Size
		wantErr bool
	}{
		"basic":       {in: "120x40", want: geometry.NewSize(120, 40)},
		"upper":       {in: " 80X24 ", want: geometry.NewSize(80, 24)},
		"zero":        {in: "0x0", want: geometry.Size{}},
		"missing sep": {in: "120", wantErr: true},
		"negative":    {in: "-1x5", wantErr: true},
		"words":       {in: "wide x tall", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseViewport(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidViewport) {
					t.Errorf("err = %v, want ErrInvalidViewport", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorProfile(t *testing.T) {
	f := tempFile(t)

	if got := ColorProfile(f, ColorNever); got != termenv.Ascii {
		t.Errorf("never: got %v, want Ascii", got)
	}
	if got := ColorProfile(f, ColorAuto); got != termenv.Ascii {
		t.Errorf("auto on a file: got %v, want Ascii", got)
	}
	if got := ColorProfile(f, ColorAlways); got == termenv.Ascii {
		t.Error("always: got Ascii, want a colour profile")
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestIsTerminalOnFile(t *testing.T) {
	if IsTerminal(tempFile(t)) {
		t.Error("regular file reported as terminal")
	}
}
