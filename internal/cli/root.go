package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/alexanderramin/flatbook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Persons       service.PersonService
	Projects      service.ProjectService
	Eligibility   service.EligibilityService
	Applications  service.ApplicationService
	Registrations service.RegistrationService
	Enquiries     service.EnquiryService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool

	// actingNRIC is the identity commands run as, from --as or FLATBOOK_USER.
	actingNRIC string
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// ActingNRIC returns the normalized NRIC the current invocation acts as.
func (app *App) ActingNRIC() (string, error) {
	if app.actingNRIC == "" {
		return "", fmt.Errorf("no acting user: pass --as NRIC or set FLATBOOK_USER")
	}
	return domain.NormalizeNRIC(app.actingNRIC), nil
}

// NewRootCmd creates the top-level "flatbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "flatbook",
		Short: "Build-To-Order flat application system",
	}

	root.PersistentFlags().StringVar(&app.actingNRIC, "as", os.Getenv("FLATBOOK_USER"),
		"NRIC to act as (defaults to FLATBOOK_USER)")

	root.AddCommand(
		newSignupCmd(app),
		newPersonCmd(app),
		newProjectCmd(app),
		newApplyCmd(app),
		newApplicationCmd(app),
		newOfficerCmd(app),
		newEnquiryCmd(app),
		newBrowseCmd(app),
	)

	return root
}
