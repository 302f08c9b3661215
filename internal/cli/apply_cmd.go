package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Browse eligible projects and submit an application",
	}

	cmd.AddCommand(
		newApplyListCmd(app),
		newApplySubmitCmd(app),
	)

	return cmd
}

func newApplyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects you are eligible for",
		RunE: func(cmd *cobra.Command, args []string) error {
			nric, err := app.ActingNRIC()
			if err != nil {
				return err
			}

			eligible, err := app.Eligibility.EligibleProjects(context.Background(), nric, time.Now().UTC())
			if err != nil {
				return err
			}
			if len(eligible) == 0 {
				fmt.Println("No eligible projects right now.")
				return nil
			}

			rows := make([]formatter.EligibleRow, 0, len(eligible))
			for _, e := range eligible {
				rows = append(rows, formatter.EligibleRow{Project: e.Project, FlatTypes: e.FlatTypes})
			}
			fmt.Printf("%s\n", formatter.FormatEligibleList(rows))
			return nil
		},
	}
}

func newApplySubmitCmd(app *App) *cobra.Command {
	var flat string

	cmd := &cobra.Command{
		Use:   "submit [PROJECT]",
		Short: "Submit an application",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			nric, err := app.ActingNRIC()
			if err != nil {
				return err
			}
			now := time.Now().UTC()

			var projectID string
			var kind domain.FlatKind

			if len(args) == 1 && flat != "" {
				projectID, err = resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				kind = domain.FlatKind(strings.ToUpper(flat))
				if !domain.ValidFlatKinds[string(kind)] {
					return fmt.Errorf("unknown flat kind %q", flat)
				}
			} else {
				// No flags: run the interactive picker over the applicant's
				// eligible offers.
				if !app.interactive() {
					return fmt.Errorf("pass PROJECT and --flat when not running interactively")
				}
				eligible, err := app.Eligibility.EligibleProjects(ctx, nric, now)
				if err != nil {
					return err
				}
				var choice string
				form := wizardSelectOffer(eligible, &choice)
				if form == nil {
					fmt.Println("No eligible projects right now.")
					return nil
				}
				if err := form.Run(); err != nil {
					return err
				}
				id, kindStr, ok := strings.Cut(choice, "/")
				if !ok {
					return fmt.Errorf("no flat selected")
				}
				projectID, kind = id, domain.FlatKind(kindStr)
			}

			a, err := app.Applications.Submit(ctx, nric, projectID, kind, now)
			if err != nil {
				return err
			}

			fmt.Printf("Submitted application %s for a %s flat — status %s\n", a.ID, a.FlatKind, a.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&flat, "flat", "", "Flat kind (TWO_ROOM|THREE_ROOM)")

	return cmd
}
