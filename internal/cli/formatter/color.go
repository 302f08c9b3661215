package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/flatbook/internal/domain"
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

// ApplicationStatusPill returns a colored status indicator for an application.
func ApplicationStatusPill(status domain.ApplicationStatus) string {
	switch status {
	case domain.AppPending:
		return StyleYellow.Render("○ Pending")
	case domain.AppSuccessful:
		return StyleGreen.Render("● Successful")
	case domain.AppBooked:
		return StyleGreen.Render("✔ Booked")
	case domain.AppUnsuccessful:
		return StyleRed.Render("✖ Unsuccessful")
	case domain.AppWithdrawalPending:
		return StyleYellow.Render("○ Withdrawal Pending")
	case domain.AppWithdrawalSuccessful:
		return StyleDim.Render("✔ Withdrawn")
	case domain.AppWithdrawalUnsuccessful:
		return StyleDim.Render("✖ Withdrawal Refused")
	default:
		return StyleDim.Render(string(status))
	}
}

// RegistrationStatusPill returns a colored status indicator for an officer
// registration.
func RegistrationStatusPill(status domain.RegistrationStatus) string {
	switch status {
	case domain.RegPending:
		return StyleYellow.Render("○ Pending")
	case domain.RegSuccessful:
		return StyleGreen.Render("✔ Approved")
	case domain.RegUnsuccessful:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleDim.Render(string(status))
	}
}

// VisibilityPill returns a colored visibility indicator for a project.
func VisibilityPill(visible bool) string {
	if visible {
		return StyleGreen.Render("● Visible")
	}
	return StyleDim.Render("○ Hidden")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
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
