package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/familiarcat/crewcoord/pkg/models"
)

var planSnapshotsPath string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a coordination plan from project snapshots",
	Long: `Analyze project snapshots against the crew roster and print a ranked
list of collaboration opportunities.

Each active project's under-progressing domains get a suggested team with
a synergy-based time-savings estimate; projects that share crew members
and feature vocabulary get cross-pollination opportunities on top.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planSnapshotsPath, "snapshots", "s", "", "YAML file of project snapshots")
}

func runPlan(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projects, err := loadSnapshots(planSnapshotsPath)
	if err != nil {
		return err
	}

	plan, err := a.coordinator.GenerateCoordinationPlan(projects)
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}

	printPlan(plan)
	return nil
}

func printPlan(plan *models.CoordinationPlan) {
	bold := color.New(color.Bold)
	bold.Printf("Plan %s\n\n", plan.ID)

	if len(plan.Opportunities) == 0 {
		fmt.Println("No collaboration opportunities found.")
	} else {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"#", "Priority", "Type", "Projects", "Team", "Saved (h)", "Model"})
		for i, o := range plan.Opportunities {
			tw.AppendRow(table.Row{
				i + 1,
				string(o.Priority),
				string(o.Type),
				strings.Join(o.ProjectNames, ", "),
				teamNames(o.Team),
				fmt.Sprintf("%.1f", o.Expected.TimeSaved),
				o.LLM.Model,
			})
		}
		tw.Render()
	}

	fmt.Println()
	fmt.Println(plan.Briefing)

	if len(plan.Warnings) > 0 {
		fmt.Println()
		yellow := color.New(color.FgYellow)
		for _, w := range plan.Warnings {
			yellow.Printf("warning: %s\n", w)
		}
	}
}

func teamNames(team []*models.CrewMember) string {
	names := make([]string, len(team))
	for i, m := range team {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}
