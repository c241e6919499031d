package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UnitColor returns the style used for a recurrence unit badge.
func UnitColor(u domain.Unit) lipgloss.Style {
	switch u {
	case domain.UnitDay:
		return StyleBlue
	case domain.UnitWeek:
		return StyleGreen
	case domain.UnitMonth:
		return StylePurple
	case domain.UnitYear:
		return StyleYellow
	default:
		return StyleDim
	}
}

// UnitBadge renders a unit as "● WEEKLY".
func UnitBadge(u domain.Unit) string {
	label := "OFF"
	switch u {
	case domain.UnitDay:
		label = "DAILY"
	case domain.UnitWeek:
		label = "WEEKLY"
	case domain.UnitMonth:
		label = "MONTHLY"
	case domain.UnitYear:
		label = "YEARLY"
	}
	return UnitColor(u).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
