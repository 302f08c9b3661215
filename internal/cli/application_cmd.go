package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/spf13/cobra"
)

func newApplicationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "application",
		Short: "Track and process flat applications",
	}

	cmd.AddCommand(
		newApplicationShowCmd(app),
		newApplicationListCmd(app),
		newApplicationApproveCmd(app),
		newApplicationRejectCmd(app),
		newApplicationBookCmd(app),
		newApplicationWithdrawCmd(app),
		newApplicationResolveCmd(app),
	)

	return cmd
}

// actingApplication resolves either an explicit application ID or, when none
// is given, the acting user's own active application.
func actingApplication(ctx context.Context, app *App, args []string) (*domain.Application, error) {
	if len(args) == 1 {
		return app.Applications.GetByID(ctx, args[0])
	}
	nric, err := app.ActingNRIC()
	if err != nil {
		return nil, err
	}
	return app.Applications.GetActiveByApplicant(ctx, nric)
}

func newApplicationShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show an application (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := actingApplication(ctx, app, args)
			if err != nil {
				return err
			}
			p, _ := app.Projects.GetByID(ctx, a.ProjectID)
			fmt.Printf("%s\n", formatter.FormatApplicationDetail(a, p))
			return nil
		},
	}
}

func newApplicationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List applications for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			apps, err := app.Applications.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(apps) == 0 {
				fmt.Println("No applications for this project.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatApplicationList(apps))
			return nil
		},
	}
}

func newApplicationApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Mark a pending application successful",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Applications.TransitionStatus(context.Background(), args[0], domain.AppSuccessful); err != nil {
				return err
			}
			fmt.Printf("Application %s is now successful\n", args[0])
			return nil
		},
	}
}

func newApplicationRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Mark a pending application unsuccessful",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Applications.TransitionStatus(context.Background(), args[0], domain.AppUnsuccessful); err != nil {
				return err
			}
			fmt.Printf("Application %s is now unsuccessful\n", args[0])
			return nil
		},
	}
}

func newApplicationBookCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "book ID",
		Short: "Book a flat for a successful application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Applications.Book(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Booked a %s flat for %s\n", a.FlatKind, a.ApplicantNRIC)
			return nil
		},
	}
}

func newApplicationWithdrawCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [ID]",
		Short: "Request withdrawal of an application (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := actingApplication(ctx, app, args)
			if err != nil {
				return err
			}

			if app.interactive() {
				var confirmed bool
				if err := wizardConfirm("Request withdrawal of this application?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Withdrawal not requested.")
					return nil
				}
			}

			if err := app.Applications.RequestWithdrawal(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Withdrawal requested for application %s\n", a.ID)
			return nil
		},
	}
}

func newApplicationResolveCmd(app *App) *cobra.Command {
	var approve, reject bool

	cmd := &cobra.Command{
		Use:   "resolve ID",
		Short: "Resolve a pending withdrawal request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}
			if err := app.Applications.ResolveWithdrawal(context.Background(), args[0], approve); err != nil {
				return err
			}
			if approve {
				fmt.Printf("Withdrawal approved for application %s\n", args[0])
			} else {
				fmt.Printf("Withdrawal rejected for application %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the withdrawal")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the withdrawal")

	return cmd
}
