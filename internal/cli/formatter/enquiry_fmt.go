package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/flatbook/internal/domain"
)

// FormatEnquiryList renders enquiries as a threaded list, replies indented
// under their enquiry.
func FormatEnquiryList(enquiries []*domain.Enquiry) string {
	var b strings.Builder

	for i, e := range enquiries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			TruncID(e.ID),
			StyleBold.Render(e.AuthorNRIC),
			Dim(HumanDate(e.CreatedAt))))
		b.WriteString("  " + StyleFg.Render(e.Text) + "\n")
		if e.Replied() {
			b.WriteString("  " + StyleGreen.Render("↳ ") + StyleFg.Render(e.Reply))
			if e.RepliedAt != nil {
				b.WriteString(" " + Dim(HumanDate(*e.RepliedAt)))
			}
			b.WriteString("\n")
		} else {
			b.WriteString("  " + Dim("↳ awaiting reply") + "\n")
		}
	}

	return b.String()
}
