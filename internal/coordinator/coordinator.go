package coordinator

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/familiarcat/crewcoord/internal/collab"
	"github.com/familiarcat/crewcoord/internal/config"
	"github.com/familiarcat/crewcoord/internal/crew"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// Phase is the coordinator's position in one planning pass.
type Phase string

const (
	// PhaseIdle means no plan generation is underway.
	PhaseIdle Phase = "idle"
	// PhaseAnalyzingProjects means per-project analysis is running.
	PhaseAnalyzingProjects Phase = "analyzing-projects"
	// PhaseAnalyzingCross means cross-project synergy discovery is running.
	PhaseAnalyzingCross Phase = "analyzing-cross-project"
	// PhaseRanking means opportunities are being ordered.
	PhaseRanking Phase = "ranking"
	// PhasePlanReady means a complete plan is available.
	PhasePlanReady Phase = "plan-ready"
)

// MemorySource supplies crew memories for narrative notes and session
// context. *memory.Store satisfies it; nil disables memory lookups.
type MemorySource interface {
	ByAuthors(crewIDs []string, limit int) ([]*models.RAGMemory, error)
}

// Coordinator analyzes project snapshots against the crew roster and
// produces ranked coordination plans. Not safe to run two plan
// generations concurrently on one Coordinator.
type Coordinator struct {
	registry *crew.Registry
	selector *collab.TeamSelector
	memories MemorySource
	keywords config.KeywordTable
	cfg      config.CoordinationConfig

	// minAvailability is the availability floor for team selection;
	// members below it are never picked for new work.
	minAvailability float64

	mu    sync.RWMutex
	phase Phase
	// opportunities indexes the most recent plan's opportunities by id
	// so they can be executed later.
	opportunities map[string]*models.CollaborationOpportunity
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithMemorySource attaches a memory source for narrative notes.
func WithMemorySource(src MemorySource) Option {
	return func(c *Coordinator) { c.memories = src }
}

// WithKeywordTable overrides the skill-inference keyword table.
func WithKeywordTable(table config.KeywordTable) Option {
	return func(c *Coordinator) { c.keywords = table }
}

// WithMinAvailability sets the availability floor for team selection.
func WithMinAvailability(min float64) Option {
	return func(c *Coordinator) { c.minAvailability = min }
}

// WithLogger installs a debug logger for coordination runs.
func WithLogger(l *DebugLogger) Option {
	return func(c *Coordinator) { setPackageLogger(l) }
}

// New creates a Coordinator over the given registry.
func New(registry *crew.Registry, cfg config.CoordinationConfig, opts ...Option) *Coordinator {
	c := &Coordinator{
		registry:      registry,
		selector:      collab.NewTeamSelector(collab.NewSynergyScorer()),
		keywords:      config.DefaultKeywordTable(),
		cfg:           cfg,
		phase:         PhaseIdle,
		opportunities: make(map[string]*models.CollaborationOpportunity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the coordinator's current phase.
func (c *Coordinator) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

func (c *Coordinator) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
	debugLog("[coordinator] phase -> %s", p)
}

// GenerateCoordinationPlan runs the full planning pipeline over the
// supplied project snapshots and returns a complete plan. The snapshot
// set must not be mutated for the duration of the call.
//
// Per-project analyses are independent: a failure analyzing one project
// is recorded as a plan warning and does not abort the others. Per-project
// opportunities are always generated before cross-project discovery runs.
func (c *Coordinator) GenerateCoordinationPlan(projects []models.ProjectSnapshot) (*models.CoordinationPlan, error) {
	active := activeProjects(projects)
	debugLog("[coordinator] generating plan for %d projects (%d active)", len(projects), len(active))

	var (
		opportunities []*models.CollaborationOpportunity
		warnings      []string
	)

	c.setPhase(PhaseAnalyzingProjects)
	for i := range active {
		opps, err := c.analyzeProject(&active[i])
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("analysis of project %s skipped: %v", active[i].ID, err))
			debugLog("[coordinator] project %s analysis failed: %v", active[i].ID, err)
			continue
		}
		opportunities = append(opportunities, opps...)
	}

	c.setPhase(PhaseAnalyzingCross)
	crossOpps, crossWarnings := c.analyzeCrossProject(active)
	opportunities = append(opportunities, crossOpps...)
	warnings = append(warnings, crossWarnings...)

	c.setPhase(PhaseRanking)
	rankOpportunities(opportunities)

	plan := c.assemblePlan(opportunities, len(active), warnings)

	c.mu.Lock()
	c.opportunities = make(map[string]*models.CollaborationOpportunity, len(opportunities))
	for _, o := range opportunities {
		c.opportunities[o.ID] = o
	}
	c.mu.Unlock()

	c.setPhase(PhasePlanReady)
	debugLog("[coordinator] plan %s ready: %d opportunities, %.1f hours saved",
		plan.ID, len(plan.Opportunities), plan.TotalTimeSavings)

	return plan, nil
}

// rankOpportunities orders opportunities by priority, tie-broken by
// descending time saved.
func rankOpportunities(opps []*models.CollaborationOpportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		ri, rj := opps[i].Priority.Rank(), opps[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return opps[i].Expected.TimeSaved > opps[j].Expected.TimeSaved
	})
}

// assemblePlan builds the final plan snapshot from ranked opportunities.
func (c *Coordinator) assemblePlan(opps []*models.CollaborationOpportunity, analyzed int, warnings []string) *models.CoordinationPlan {
	var totalSaved float64
	for _, o := range opps {
		totalSaved += o.Expected.TimeSaved
	}

	utilization := make(map[string]float64)
	for _, m := range c.registry.List() {
		utilization[m.ID] = 100 - m.Availability
	}

	plan := &models.CoordinationPlan{
		ID:                    shortID(),
		CreatedAt:             time.Now(),
		Opportunities:         opps,
		TotalProjectsAnalyzed: analyzed,
		TotalTimeSavings:      totalSaved,
		CrewUtilization:       utilization,
		Warnings:              warnings,
	}
	plan.Briefing = buildBriefing(plan)

	return plan
}

// selectionPool returns the roster members eligible for new work,
// applying the availability floor.
func (c *Coordinator) selectionPool() []*models.CrewMember {
	return crew.AvailableCrew(c.registry.List(), c.minAvailability)
}

// activeProjects filters snapshots to active ones.
func activeProjects(projects []models.ProjectSnapshot) []models.ProjectSnapshot {
	var active []models.ProjectSnapshot
	for _, p := range projects {
		if p.Status == models.ProjectActive {
			active = append(active, p)
		}
	}
	return active
}

// shortID returns an 8-character human-facing identifier.
func shortID() string {
	return uuid.New().String()[:8]
}
