package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOfficerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "officer",
		Short: "Officer registrations for project duty",
	}

	cmd.AddCommand(
		newOfficerRegistrableCmd(app),
		newOfficerRegisterCmd(app),
		newOfficerListCmd(app),
		newOfficerApproveCmd(app),
		newOfficerRejectCmd(app),
	)

	return cmd
}

func newOfficerRegistrableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "registrable",
		Short: "List projects you can register for",
		RunE: func(cmd *cobra.Command, args []string) error {
			nric, err := app.ActingNRIC()
			if err != nil {
				return err
			}

			projects, err := app.Registrations.RegistrableProjects(context.Background(), nric, time.Now().UTC())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No registrable projects right now.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newOfficerRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register PROJECT",
		Short: "Register to handle a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			nric, err := app.ActingNRIC()
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			reg, err := app.Registrations.Register(ctx, nric, projectID, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Printf("Registration %s submitted — status %s\n", reg.ID, reg.Status)
			return nil
		},
	}
}

func newOfficerListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registrations (yours, or a project's with --project)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				regs, err := app.Registrations.ListByProject(ctx, projectID)
				if err != nil {
					return err
				}
				if len(regs) == 0 {
					fmt.Println("No registrations for this project.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatRegistrationList(regs))
				return nil
			}

			nric, err := app.ActingNRIC()
			if err != nil {
				return err
			}
			regs, err := app.Registrations.ListByOfficer(ctx, nric)
			if err != nil {
				return err
			}
			if len(regs) == 0 {
				fmt.Println("You have no registrations.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatRegistrationList(regs))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "List a project's registrations instead")

	return cmd
}

func newOfficerApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registrations.Approve(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Registration %s approved\n", args[0])
			return nil
		},
	}
}

func newOfficerRejectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Registrations.Reject(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Registration %s rejected\n", args[0])
			return nil
		},
	}
}
