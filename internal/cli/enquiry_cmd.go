package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEnquiryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enquiry",
		Short: "Ask and answer questions about projects",
	}

	cmd.AddCommand(
		newEnquiryAddCmd(app),
		newEnquiryEditCmd(app),
		newEnquiryDeleteCmd(app),
		newEnquiryReplyCmd(app),
		newEnquiryListCmd(app),
	)

	return cmd
}

func newEnquiryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT TEXT...",
		Short: "Post an enquiry about a project",
		Args:  cobra.MinimumNArgs(2),
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

			e, err := app.Enquiries.Create(ctx, nric, projectID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Printf("Posted enquiry %s\n", e.ID)
			return nil
		},
	}
}

func newEnquiryEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID TEXT...",
		Short: "Edit an enquiry that has not been replied to",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Enquiries.Edit(context.Background(), args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Printf("Updated enquiry %s\n", args[0])
			return nil
		},
	}
}

func newEnquiryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an enquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Enquiries.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted enquiry %s\n", args[0])
			return nil
		},
	}
}

func newEnquiryReplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reply ID TEXT...",
		Short: "Reply to an enquiry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args[1:], " ")
			if err := app.Enquiries.Reply(context.Background(), args[0], message, time.Now().UTC()); err != nil {
				return err
			}
			fmt.Printf("Replied to enquiry %s\n", args[0])
			return nil
		},
	}
}

func newEnquiryListCmd(app *App) *cobra.Command {
	var project string
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enquiries for a project, or your own with --mine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			switch {
			case mine:
				nric, err := app.ActingNRIC()
				if err != nil {
					return err
				}
				list, err := app.Enquiries.ListByAuthor(ctx, nric)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					fmt.Println("You have no enquiries.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatEnquiryList(list))
			case project != "":
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				list, err := app.Enquiries.ListByProject(ctx, projectID)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					fmt.Println("No enquiries for this project.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatEnquiryList(list))
			default:
				return fmt.Errorf("pass --project NAME or --mine")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project to list enquiries for")
	cmd.Flags().BoolVar(&mine, "mine", false, "List your own enquiries")

	return cmd
}
