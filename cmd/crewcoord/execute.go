package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/familiarcat/crewcoord/internal/memory"
	"github.com/familiarcat/crewcoord/pkg/models"
)

var executeSnapshotsPath string

var executeCmd = &cobra.Command{
	Use:   "execute [rank]",
	Short: "Execute a collaboration opportunity from a fresh plan",
	Long: `Regenerate the coordination plan from the snapshots file and execute
the opportunity at the given rank (1-based, default 1).

Execution records a collaboration session, applies the team's hours to
their availability, and prints the resulting progress credit. Applying
progress to the project snapshot itself is up to whatever owns it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecute,
}

func init() {
	executeCmd.Flags().StringVarP(&executeSnapshotsPath, "snapshots", "s", "", "YAML file of project snapshots")
}

func runExecute(cmd *cobra.Command, args []string) error {
	rank := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("rank must be a positive integer, got %q", args[0])
		}
		rank = n
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projects, err := loadSnapshots(executeSnapshotsPath)
	if err != nil {
		return err
	}

	plan, err := a.coordinator.GenerateCoordinationPlan(projects)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}
	if rank > len(plan.Opportunities) {
		return fmt.Errorf("plan has %d opportunities, rank %d does not exist", len(plan.Opportunities), rank)
	}
	opp := plan.Opportunities[rank-1]

	session, err := a.coordinator.ExecuteCollaboration(opp.ID)
	if err != nil {
		return fmt.Errorf("execute collaboration: %w", err)
	}

	if err := a.db.AppendSession(session); err != nil {
		return fmt.Errorf("record session: %w", err)
	}

	// The lead remembers what the session learned, so later plans can
	// surface it in their notes.
	if len(session.Insights) > 0 {
		mem := &models.RAGMemory{
			ID:             session.ID,
			CrewID:         opp.Team[0].ID,
			Content:        session.Insights[0],
			Type:           "session",
			ProjectContext: session.Task.ProjectID,
			CreatedAt:      session.StartedAt,
		}
		if err := memory.NewStore(a.db).Add(mem); err != nil {
			return fmt.Errorf("record memory: %w", err)
		}
	}

	// The team splits the accelerated hours; each member's availability
	// drops by their share.
	actualHours := session.Task.EstimatedHours / opp.Expected.Factor
	share := actualHours / float64(len(opp.Team))
	for _, m := range opp.Team {
		if _, err := a.tracker.UpdateAfterCollaboration(m.ID, share, a.cfg.Crew.WeeklyCapacityHours); err != nil {
			return fmt.Errorf("update availability for %s: %w", m.ID, err)
		}
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Session %s recorded\n", session.ID)
	fmt.Printf("  task: %s\n", session.Task.Description)
	fmt.Printf("  team: %s\n", teamNames(opp.Team))
	fmt.Printf("  model: %s\n", session.LLMModel)
	fmt.Printf("  progress credit: %.0f%%\n", session.ProgressDelta)
	for _, insight := range session.Insights {
		fmt.Printf("  - %s\n", insight)
	}

	return nil
}
