package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/flatbook/internal/cli"
	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/repository"
	"github.com/alexanderramin/flatbook/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.flatbook/flatbook.db
	dbPath := os.Getenv("FLATBOOK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".flatbook", "flatbook.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	personRepo := repository.NewSQLitePersonRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	applicationRepo := repository.NewSQLiteApplicationRepo(database)
	registrationRepo := repository.NewSQLiteRegistrationRepo(database)
	enquiryRepo := repository.NewSQLiteEnquiryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Structured use-case logging when FLATBOOK_LOG is set.
	var observers []service.UseCaseObserver
	if os.Getenv("FLATBOOK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	eligibilitySvc := service.NewEligibilityService(personRepo, projectRepo, applicationRepo, registrationRepo)

	app := &cli.App{
		Persons:       service.NewPersonService(personRepo),
		Projects:      service.NewProjectService(projectRepo, personRepo),
		Eligibility:   eligibilitySvc,
		Applications:  service.NewApplicationService(applicationRepo, projectRepo, eligibilitySvc, uow, observers...),
		Registrations: service.NewRegistrationService(registrationRepo, projectRepo, personRepo, applicationRepo, uow, observers...),
		Enquiries:     service.NewEnquiryService(enquiryRepo, projectRepo),
	}

	// Interactive wizards require a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
