package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/domain"
)

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "NEIGHBORHOOD", "PERIOD", "FLATS", "VISIBILITY"}
	rows := make([][]string, 0, len(projects))
	now := time.Now()

	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			StyleBold.Render(p.Name),
			StylePurple.Render(p.Neighborhood),
			PeriodStyled(p.OpenDate, p.CloseDate, now),
			flatSummary(p.FlatTypes),
			VisibilityPill(p.Visible),
		})
	}

	return RenderTable(headers, rows)
}

// EligibleRow is one project offer in an applicant's eligibility listing,
// carrying only the flat types retained for that applicant.
type EligibleRow struct {
	Project   *domain.Project
	FlatTypes []domain.FlatType
}

// FormatEligibleList renders the projects an applicant may apply to.
func FormatEligibleList(eligible []EligibleRow) string {
	headers := []string{"ID", "NAME", "NEIGHBORHOOD", "PERIOD", "ELIGIBLE FLATS"}
	rows := make([][]string, 0, len(eligible))
	now := time.Now()

	for _, e := range eligible {
		rows = append(rows, []string{
			TruncID(e.Project.ID),
			StyleBold.Render(e.Project.Name),
			StylePurple.Render(e.Project.Neighborhood),
			PeriodStyled(e.Project.OpenDate, e.Project.CloseDate, now),
			flatSummary(e.FlatTypes),
		})
	}

	return RenderTable(headers, rows)
}

// FormatProjectDetail renders a full project view with its flat type
// inventory and officer roster.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Header(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), p.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Neighborhood:"), p.Neighborhood))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Period:"), Period(p.OpenDate, p.CloseDate)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Manager:"), p.ManagerNRIC))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Visibility:"), VisibilityPill(p.Visible)))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Officer slots:"), p.OfficerSlots))

	b.WriteString("\n" + Header("Flat Types") + "\n")
	for _, ft := range p.FlatTypes {
		b.WriteString(fmt.Sprintf("  %s  %s units remaining, %s\n",
			StyleBold.Render(string(ft.Kind)),
			unitsStyled(ft.UnitsRemaining),
			SGD(ft.PriceSGD)))
	}

	if len(p.Officers) > 0 {
		b.WriteString("\n" + Header("Officers") + "\n")
		for _, nric := range p.Officers {
			b.WriteString("  " + StyleFg.Render(nric) + "\n")
		}
	}

	return b.String()
}

func flatSummary(types []domain.FlatType) string {
	parts := make([]string, 0, len(types))
	for _, ft := range types {
		parts = append(parts, fmt.Sprintf("%s×%s", string(ft.Kind), unitsStyled(ft.UnitsRemaining)))
	}
	return strings.Join(parts, "  ")
}

func unitsStyled(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return StyleRed.Render(s)
	}
	if n <= 5 {
		return StyleYellow.Render(s)
	}
	return StyleGreen.Render(s)
}
