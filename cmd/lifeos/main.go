package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/lifeos/internal/cli"
	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/generation"
	"github.com/alexanderramin/lifeos/internal/llm"
	"github.com/alexanderramin/lifeos/internal/repository"
	"github.com/alexanderramin/lifeos/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lifeos/lifeos.db
	dbPath := os.Getenv("LIFEOS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lifeos", "lifeos.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteChildProfileRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	checkinRepo := repository.NewSQLiteCheckinRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the generator factory against the LLM configuration. The
	// factory decides live vs fallback per request based on the hint.
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	selectGen := func(modelHint string) generation.TaskGenerator {
		return generation.Select(modelHint, llmCfg, llmObserver)
	}

	var useCaseObservers []service.UseCaseObserver
	if os.Getenv("LIFEOS_LOG") == "1" {
		useCaseObservers = append(useCaseObservers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Profiles:   service.NewProfileService(profileRepo),
		Plans:      service.NewPlanService(profileRepo, taskRepo, checkinRepo, uow, selectGen, useCaseObservers...),
		Tasks:      service.NewTaskService(taskRepo),
		Checkins:   service.NewCheckinService(profileRepo, checkinRepo),
		Milestones: service.NewMilestoneService(profileRepo, milestoneRepo),
		Progress:   service.NewProgressService(profileRepo, taskRepo),
	}

	// Detect interactive terminal for form-based prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
