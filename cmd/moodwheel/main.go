package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/moodwheel/internal/cli"
	"github.com/alexanderramin/moodwheel/internal/config"
	"github.com/alexanderramin/moodwheel/internal/db"
	"github.com/alexanderramin/moodwheel/internal/repository"
	"github.com/alexanderramin/moodwheel/internal/service"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{
		Config: cfg,
		Open:   openCheckIns,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.Execute(context.Background(), cli.NewRootCmd(app), app)
}

// openCheckIns wires the wheel, database, repositories and service for cfg.
// It runs after flags are parsed so --db and --wheel take effect.
func openCheckIns(cfg config.Config) (service.CheckInService, func() error, error) {
	tree := wheel.Default()
	if cfg.WheelPath != "" {
		loaded, err := wheel.Load(cfg.WheelPath)
		if err != nil {
			return nil, nil, err
		}
		tree = loaded
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEvents {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	svc := service.NewCheckInService(
		tree,
		repository.NewSQLiteSelectionRepo(database),
		repository.NewSQLitePaletteRepo(database),
		repository.NewSQLiteCheckInRepo(database),
		db.NewSQLiteUnitOfWork(database),
		observer,
	)
	return svc, database.Close, nil
}
