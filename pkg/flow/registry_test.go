package flow

import (
	"errors"
	"slices"
	"testing"
)

func TestByName(t *testing.T) {
	cache := NewCache()
	tests := map[string]func(t *testing.T, got any){
		"": func(t *testing.T, got any) {
			s, ok := got.(Stack)
			if !ok || s.Direction != Vertical || s.Cache != cache {
				t.Errorf("got %#v, want vertical stack sharing the cache", got)
			}
		},
		"horizontal": func(t *testing.T, got any) {
			if s, ok := got.(Stack); !ok || s.Direction != Horizontal {
				t.Errorf("got %#v, want horizontal stack", got)
			}
		},
		"grid": func(t *testing.T, got any) {
			if g, ok := got.(Grid); !ok || g.Columns != 2 {
				t.Errorf("got %#v, want two-column grid", got)
			}
		},
	}

	for name, check := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := ByName(name, cache)
			if err != nil {
				t.Fatalf("ByName(%q): %v", name, err)
			}
			check(t, l)
		})
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("masonry", nil)
	if !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("err = %v, want ErrUnknownLayout", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{"grid", "horizontal", "vertical"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
