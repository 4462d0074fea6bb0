package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/decalage/internal/cli"
	"github.com/alexanderramin/decalage/internal/config"
	"github.com/alexanderramin/decalage/internal/db"
	"github.com/alexanderramin/decalage/internal/repository"
	"github.com/alexanderramin/decalage/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Open catalog database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	dayRepo := repository.NewSQLiteDaySlotRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Calculator: service.NewCalculatorService(dayRepo, sessionRepo, loc, observer),
		Catalog:    service.NewCatalogService(dayRepo, sessionRepo, uow, loc, observer),
		DataPath:   cfg.DataPath,
	}

	// Bare "decalage" opens the TUI only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
