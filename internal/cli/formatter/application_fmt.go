package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/flatbook/internal/domain"
)

// FormatApplicationList renders applications as a table.
func FormatApplicationList(apps []*domain.Application) string {
	headers := []string{"ID", "APPLICANT", "FLAT", "STATUS", "SUBMITTED"}
	rows := make([][]string, 0, len(apps))

	for _, a := range apps {
		rows = append(rows, []string{
			TruncID(a.ID),
			StyleFg.Render(a.ApplicantNRIC),
			StyleBold.Render(string(a.FlatKind)),
			ApplicationStatusPill(a.Status),
			Dim(HumanDate(a.CreatedAt)),
		})
	}

	return RenderTable(headers, rows)
}

// FormatApplicationDetail renders one application in full.
func FormatApplicationDetail(a *domain.Application, p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Header("Application") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), a.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Applicant:"), a.ApplicantNRIC))
	if p != nil {
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", Dim("Project:"), p.Name, p.Neighborhood))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Project:"), a.ProjectID))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Flat type:"), StyleBold.Render(string(a.FlatKind))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), ApplicationStatusPill(a.Status)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Submitted:"), HumanDate(a.CreatedAt)))
	if a.Status == domain.AppBooked {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Booked:"), HumanDate(a.UpdatedAt)))
	}

	return b.String()
}

// FormatRegistrationList renders officer registrations as a table.
func FormatRegistrationList(regs []*domain.OfficerRegistration) string {
	headers := []string{"ID", "OFFICER", "PROJECT", "STATUS", "REQUESTED"}
	rows := make([][]string, 0, len(regs))

	for _, r := range regs {
		rows = append(rows, []string{
			TruncID(r.ID),
			StyleFg.Render(r.OfficerNRIC),
			TruncID(r.ProjectID),
			RegistrationStatusPill(r.Status),
			Dim(HumanDate(r.CreatedAt)),
		})
	}

	return RenderTable(headers, rows)
}
