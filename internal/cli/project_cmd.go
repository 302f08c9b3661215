package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/flatbook/internal/cli/formatter"
	"github.com/alexanderramin/flatbook/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage BTO projects (manager)",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectVisibilityCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

// parseFlatTypes parses a --flats value like
// "TWO_ROOM:100:150000,THREE_ROOM:50:250000" into flat type entries.
func parseFlatTypes(spec string) ([]domain.FlatType, error) {
	var types []domain.FlatType
	for _, part := range strings.Split(spec, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid flat spec %q, expected KIND:UNITS:PRICE", part)
		}
		kind := domain.FlatKind(strings.ToUpper(fields[0]))
		if !domain.ValidFlatKinds[string(kind)] {
			return nil, fmt.Errorf("unknown flat kind %q", fields[0])
		}
		units, err := strconv.Atoi(fields[1])
		if err != nil || units < 0 {
			return nil, fmt.Errorf("invalid unit count %q", fields[1])
		}
		price, err := strconv.Atoi(fields[2])
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid price %q", fields[2])
		}
		types = append(types, domain.FlatType{Kind: kind, UnitsRemaining: units, PriceSGD: price})
	}
	return types, nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, neighborhood, openStr, closeStr, flats string
	var slots int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := app.ActingNRIC()
			if err != nil {
				return err
			}

			openDate, err := time.Parse("2006-01-02", openStr)
			if err != nil {
				return fmt.Errorf("invalid open date %q: %w", openStr, err)
			}
			closeDate, err := time.Parse("2006-01-02", closeStr)
			if err != nil {
				return fmt.Errorf("invalid close date %q: %w", closeStr, err)
			}
			flatTypes, err := parseFlatTypes(flats)
			if err != nil {
				return err
			}

			p := &domain.Project{
				Name:         name,
				ManagerNRIC:  manager,
				Neighborhood: neighborhood,
				FlatTypes:    flatTypes,
				OpenDate:     openDate,
				CloseDate:    closeDate,
				OfficerSlots: slots,
				Visible:      true,
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s in %s\n", p.Name, p.Neighborhood)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&neighborhood, "neighborhood", "", "Neighborhood")
	cmd.Flags().StringVar(&openStr, "open", "", "Application open date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&closeStr, "close", "", "Application close date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flats, "flats", "", "Flat types (KIND:UNITS:PRICE, comma-separated)")
	cmd.Flags().IntVar(&slots, "slots", 10, "Officer slots")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("neighborhood")
	_ = cmd.MarkFlagRequired("open")
	_ = cmd.MarkFlagRequired("close")
	_ = cmd.MarkFlagRequired("flats")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), !all)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include hidden projects")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectDetail(p))
			return nil
		},
	}
}

func newProjectVisibilityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "visibility PROJECT on|off",
		Short: "Toggle project visibility",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var visible bool
			switch args[1] {
			case "on":
				visible = true
			case "off":
				visible = false
			default:
				return fmt.Errorf("visibility must be %q or %q, got %q", "on", "off", args[1])
			}

			if err := app.Projects.SetVisibility(ctx, projectID, visible); err != nil {
				return err
			}
			fmt.Printf("Project %s visibility set to %s\n", projectID, args[1])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}
