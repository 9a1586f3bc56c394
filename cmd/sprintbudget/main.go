package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/sprintbudget/internal/cli"
	"github.com/alexanderramin/sprintbudget/internal/config"
	"github.com/alexanderramin/sprintbudget/internal/db"
	"github.com/alexanderramin/sprintbudget/internal/repository"
	"github.com/alexanderramin/sprintbudget/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config: SPRINTBUDGET_CONFIG, ~/.sprintbudget/config.yaml, then env overrides.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("store opened", "path", cfg.DB.Path)

	// Wire repositories
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	capRepo := repository.NewSQLiteSprintCapRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for scenario replacement
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.SlogLevel()))
	}

	app := &cli.App{
		Plan:      service.NewPlanService(settingsRepo, capRepo, taskRepo, observers...),
		Tasks:     service.NewTaskService(taskRepo, observers...),
		Settings:  service.NewSettingsService(settingsRepo, capRepo, observers...),
		Scenarios: service.NewScenarioService(settingsRepo, capRepo, taskRepo, uow, observers...),
		Config:    cfg,
		Logger:    logger,
	}

	// Forms and the dashboard need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
