package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/rdubel/trailhead/internal/cli"
	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/repository"
	"github.com/rdubel/trailhead/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.trailhead/trailhead.db
	dbPath := os.Getenv("TRAILHEAD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".trailhead", "trailhead.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	pathRepo := repository.NewSQLitePathRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	topicRepo := repository.NewSQLiteTopicRepo(database)
	reqRepo := repository.NewSQLiteRequirementRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Paths:     service.NewPathService(pathRepo, unitRepo, sectionRepo),
		Sections:  service.NewSectionService(pathRepo, unitRepo, sectionRepo, topicRepo, reqRepo, resourceRepo),
		Progress:  service.NewProgressService(sectionRepo, topicRepo, reqRepo, uow),
		Agenda:    service.NewAgendaService(sectionRepo),
		Logs:      service.NewLogService(pathRepo, logRepo),
		Snapshots: service.NewSnapshotService(pathRepo, unitRepo, sectionRepo, topicRepo, reqRepo, resourceRepo, logRepo),
		Import:    service.NewImportService(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
