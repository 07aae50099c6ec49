package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/familiarcat/crewcoord/internal/config"
	"github.com/familiarcat/crewcoord/internal/coordinator"
	"github.com/familiarcat/crewcoord/internal/crew"
	"github.com/familiarcat/crewcoord/internal/memory"
	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// app bundles the wired components a command needs.
type app struct {
	cfg         *config.Config
	db          *state.DB
	logger      *coordinator.DebugLogger
	registry    *crew.Registry
	tracker     *crew.AvailabilityTracker
	coordinator *coordinator.Coordinator
}

// loadApp loads configuration and wires the roster, database, and
// coordinator. The caller must Close the app when done.
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := coordinator.NewDebugLogger(debugLogPath)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}

	dbPath := cfg.Storage.Path
	if dbPath == "" {
		dbPath = state.DefaultDBPath()
	}
	db, err := state.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	roster, err := crew.LoadRoster(cfg.Crew.RosterPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load roster: %w", err)
	}
	registry, err := crew.NewRegistry(roster)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("build registry: %w", err)
	}

	keywords, err := config.LoadKeywordTable(cfg.Coordination.KeywordTablePath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load keyword table: %w", err)
	}

	coord := coordinator.New(registry, cfg.Coordination,
		coordinator.WithMemorySource(memory.NewStore(db)),
		coordinator.WithKeywordTable(keywords),
		coordinator.WithMinAvailability(cfg.Crew.MinAvailability),
		coordinator.WithLogger(logger),
	)

	return &app{
		cfg:         cfg,
		db:          db,
		logger:      logger,
		registry:    registry,
		tracker:     crew.NewAvailabilityTracker(registry, db),
		coordinator: coord,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() error {
	a.logger.Close()
	return a.db.Close()
}

// loadSnapshots reads project snapshots from a YAML file. The file holds
// a list of projects under a top-level "projects" key.
func loadSnapshots(path string) ([]models.ProjectSnapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("no snapshots file given (use --snapshots)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}

	var doc struct {
		Projects []models.ProjectSnapshot `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshots: %w", err)
	}
	if len(doc.Projects) == 0 {
		return nil, fmt.Errorf("snapshots file %s lists no projects", path)
	}

	for i := range doc.Projects {
		if !doc.Projects[i].Status.Valid() {
			return nil, fmt.Errorf("project %s has unknown status %q", doc.Projects[i].ID, doc.Projects[i].Status)
		}
	}

	return doc.Projects, nil
}
