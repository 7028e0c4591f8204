// Package theme defines the appearance settings: light/dark mode and the
// fixed accent palette presets.
package theme

import (
	"fmt"
	"strings"
)

// Mode selects the light or dark rendering mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode converts a string to a Mode, defaulting empty input to Light.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return Light, nil
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return Light, fmt.Errorf("theme: unknown mode %q", raw)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Preset is a fixed accent color option.
type Preset struct {
	ID    string
	Label string
	RGB   string // "r, g, b" channel triple
}

// Presets returns the palette options in display order. The first preset is
// the fallback for unknown ids.
func Presets() []Preset {
	return []Preset{
		{ID: "ocean", Label: "Ocean", RGB: "10, 132, 255"},
		{ID: "mint", Label: "Mint", RGB: "52, 199, 89"},
		{ID: "sunset", Label: "Sunset", RGB: "255, 159, 10"},
		{ID: "rose", Label: "Rose", RGB: "255, 59, 48"},
		{ID: "violet", Label: "Violet", RGB: "99, 102, 241"},
	}
}

// Get resolves a preset id, falling back to the first preset.
func Get(id string) Preset {
	presets := Presets()
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return presets[0]
}

// ValidPreset reports whether id names a known preset.
func ValidPreset(id string) bool {
	for _, p := range Presets() {
		if p.ID == id {
			return true
		}
	}
	return false
}

// DefaultPreset is the id applied to fresh or malformed state.
func DefaultPreset() string {
	return Presets()[0].ID
}
