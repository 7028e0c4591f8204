package teaui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lifeos/pkg/theme"
	"tableflip.dev/lifeos/pkg/viewmodel"
)

// Styles centralizes Lip Gloss styles for the tracker UI. The accent color
// follows the persisted palette preset.
type Styles struct {
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Good      lipgloss.Style
	Warn      lipgloss.Style
	Bad       lipgloss.Style
	Clock     lipgloss.Style
	Frame     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for a mode and palette preset.
func NewStyles(mode theme.Mode, p theme.Preset) Styles {
	accent := accentColor(p)

	faint := lipgloss.Color("244")
	if mode == theme.Light {
		faint = lipgloss.Color("246")
	}

	return Styles{
		Tab:       lipgloss.NewStyle().Foreground(faint).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true),
		Text:      lipgloss.NewStyle(),
		Faint:     lipgloss.NewStyle().Foreground(faint),
		Accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Clock: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4),
		Frame:  lipgloss.NewStyle().Padding(1, 2),
		Status: lipgloss.NewStyle().Foreground(faint),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) tier(t viewmodel.Tier) lipgloss.Style {
	switch t {
	case viewmodel.TierBad:
		return s.Bad
	case viewmodel.TierWarn:
		return s.Warn
	case viewmodel.TierGood:
		return s.Good
	default:
		return s.Faint
	}
}

// accentColor converts a preset's "r, g, b" triple to a hex color.
func accentColor(p theme.Preset) color.Color {
	parts := strings.Split(p.RGB, ",")
	if len(parts) != 3 {
		return lipgloss.Color("212")
	}
	rgb := make([]int, 3)
	for i, part := range parts {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &v); err != nil || v < 0 || v > 255 {
			return lipgloss.Color("212")
		}
		rgb[i] = v
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
}
