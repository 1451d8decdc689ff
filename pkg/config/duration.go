package config

import (
	"fmt"
	"strings"
	"time"
)

// Duration is a time.Duration read from TOML as a Go duration string
// ("500ms", "2s"). "off" and the empty string mean zero, which disables the
// setting it controls.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || strings.EqualFold(s, "off") {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: duration %q: %w: %w", s, ErrInvalid, err)
	}
	if parsed < 0 {
		return fmt.Errorf("config: negative duration %q: %w", s, ErrInvalid)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Zero is written as "off".
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte("off"), nil
	}
	return []byte(d.Duration.String()), nil
}
