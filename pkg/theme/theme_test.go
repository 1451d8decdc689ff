package theme

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestBuiltinsValidate(t *testing.T) {
	for _, th := range builtins {
		if err := th.Validate(); err != nil {
			t.Errorf("builtin %q: %v", th.Name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, err := Lookup("NORD"); err != nil {
		t.Fatalf("Lookup(NORD) error = %v", err)
	}
	th, err := Lookup("")
	if err != nil || th.Name != DefaultName {
		t.Fatalf("Lookup(\"\") = %q, %v; want default", th.Name, err)
	}
	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("Lookup(missing) error = %v, want ErrUnknownTheme", err)
	}
	if got := Get("missing").Name; got != DefaultName {
		t.Errorf("Get(missing) = %q, want %q", got, DefaultName)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"default", "gruvbox", "mono", "nord"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestDepthColor(t *testing.T) {
	th := Theme{Depth: []string{"1", "2"}}
	if got := th.DepthColor(3); got != "2" {
		t.Errorf("DepthColor(3) = %q, want 2", got)
	}
	if got := (Theme{}).DepthColor(0); got != "" {
		t.Errorf("empty DepthColor = %q, want none", got)
	}
}

func TestValidate(t *testing.T) {
	good := Theme{Name: "x", Depth: []string{"#112233"}, Split: "1", Dock: "2", Selected: "3", Status: "240"}
	tests := map[string]struct {
		edit    func(*Theme)
		wantErr bool
	}{
		"valid":       {edit: func(*Theme) {}},
		"no name":     {edit: func(t *Theme) { t.Name = " " }, wantErr: true},
		"no depth":    {edit: func(t *Theme) { t.Depth = nil }, wantErr: true},
		"short hex":   {edit: func(t *Theme) { t.Dock = "#fff" }, wantErr: true},
		"named color": {edit: func(t *Theme) { t.Split = "red" }, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			th := good
			th.Depth = slices.Clone(good.Depth)
			tt.edit(&th)
			if err := th.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.toml")
	data := `
name = "solar"
depth = ["#268bd2", "#2aa198"]
split = "#b58900"
dock = "#d33682"
selected = "#dc322f"
status = "#586e75"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if th.Dock != "#d33682" || len(th.Depth) != 2 {
		t.Errorf("LoadFile() = %+v", th)
	}
	if got := Get("solar").Name; got != "solar" {
		t.Errorf("registered theme = %q, want solar", got)
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFromTOML([]byte(`name = "bad"
depth = ["blue"]`)); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}
