package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chrono/internal/domain"
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

// Predefined lipgloss styles.
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

// StatusStyle returns the style used for a timer status.
func StatusStyle(s domain.TimerStatus) lipgloss.Style {
	switch s {
	case domain.TimerRunning:
		return StyleGreen
	case domain.TimerPaused:
		return StyleYellow
	case domain.TimerCompleted:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusIcon returns a one-cell glyph for a timer status.
func StatusIcon(s domain.TimerStatus) string {
	switch s {
	case domain.TimerRunning:
		return StyleGreen.Render("▶")
	case domain.TimerPaused:
		return StyleYellow.Render("⏸")
	case domain.TimerCompleted:
		return StyleBlue.Render("✔")
	default:
		return StyleDim.Render("○")
	}
}

// StatusPill returns a colored status label such as "▶ Running".
func StatusPill(s domain.TimerStatus) string {
	label := string(s)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	switch s {
	case domain.TimerIdle:
		return StyleDim.Render("○ " + label)
	case domain.TimerRunning, domain.TimerPaused, domain.TimerCompleted:
		return StatusIcon(s) + " " + StatusStyle(s).Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// CategoryBadge renders a category name in the accent color.
func CategoryBadge(category string) string {
	return StylePurple.Render(category)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success prefixes text with a green check mark.
func Success(text string) string {
	return StyleGreen.Render("✔") + " " + text
}

// Error renders an error for inline display.
func Error(err error) string {
	return StyleRed.Render("Error: " + err.Error())
}
