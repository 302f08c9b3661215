package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// Period renders an application period as "Jan 2 – Feb 15, 2006".
func Period(open, close time.Time) string {
	if open.Year() == close.Year() {
		return fmt.Sprintf("%s – %s", open.Format("Jan 2"), close.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s – %s", open.Format("Jan 2, 2006"), close.Format("Jan 2, 2006"))
}

// PeriodStyled renders Period with urgency coloring against the close date:
// red once closed, yellow within a week of closing.
func PeriodStyled(open, close time.Time, now time.Time) string {
	text := Period(open, close)
	switch {
	case now.After(close.AddDate(0, 0, 1)):
		return StyleRed.Render(text)
	case close.Sub(now) <= 7*24*time.Hour:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// SGD renders a price in whole Singapore dollars with thousands separators.
func SGD(amount int) string {
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "S$" + strings.Join(parts, ",")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
