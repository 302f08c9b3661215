package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *App) *cobra.Command {
	var nric, name, marital, role string
	var age int

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new person",
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := nric == "" || name == "" || marital == "" || !cmd.Flags().Changed("age")
			if missing && !app.interactive() {
				return fmt.Errorf("pass --nric, --name, --age and --marital when not running interactively")
			}

			// Missing fields fall back to interactive forms.
			if nric == "" {
				if err := wizardInputText("NRIC", "S1234567A", true, &nric).Run(); err != nil {
					return err
				}
			}
			if name == "" {
				if err := wizardInputText("Full Name", "", true, &name).Run(); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("age") {
				var ageStr string
				form := wizardInputText("Age", "35", true, &ageStr)
				if err := form.Run(); err != nil {
					return err
				}
				if err := validatePositiveInt(ageStr); err != nil {
					return err
				}
				age, _ = strconv.Atoi(ageStr)
			}
			if marital == "" {
				if err := wizardSelectMaritalStatus(&marital).Run(); err != nil {
					return err
				}
			}

			p := &domain.Person{
				NRIC:          nric,
				Name:          name,
				Age:           age,
				MaritalStatus: domain.MaritalStatus(strings.ToUpper(marital)),
				Role:          domain.Role(strings.ToUpper(role)),
			}
			if err := app.Persons.Register(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Registered %s (%s) as %s\n", p.Name, p.NRIC, p.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&nric, "nric", "", "NRIC (e.g. S1234567A)")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&marital, "marital", "", "Marital status (SINGLE|MARRIED)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleApplicant), "Role (APPLICANT|OFFICER|MANAGER)")

	return cmd
}

func newPersonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Look up registered persons",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all registered persons",
			RunE: func(cmd *cobra.Command, args []string) error {
				persons, err := app.Persons.List(context.Background())
				if err != nil {
					return err
				}
				if len(persons) == 0 {
					fmt.Println("No persons registered.")
					return nil
				}

				headers := []string{"NRIC", "NAME", "AGE", "MARITAL", "ROLE"}
				rows := make([][]string, 0, len(persons))
				for _, p := range persons {
					rows = append(rows, []string{
						formatter.Bold(p.NRIC),
						p.Name,
						strconv.Itoa(p.Age),
						string(p.MaritalStatus),
						string(p.Role),
					})
				}
				fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show NRIC",
			Short: "Show one person",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.Persons.GetByNRIC(context.Background(), domain.NormalizeNRIC(args[0]))
				if err != nil {
					return err
				}
				fmt.Printf("%s  %s\n%s %d\n%s %s\n%s %s\n",
					formatter.Bold(p.NRIC), p.Name,
					formatter.Dim("Age:"), p.Age,
					formatter.Dim("Marital status:"), p.MaritalStatus,
					formatter.Dim("Role:"), p.Role)
				return nil
			},
		},
	)

	return cmd
}
