package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <project-id>",
	Short: "List recorded collaboration sessions for a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sessions, err := a.db.ListSessions(args[0])
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Printf("No sessions recorded for project %s.\n", args[0])
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Started", "Domain", "Model", "Progress", "Pairs"})
	for _, s := range sessions {
		tw.AppendRow(table.Row{
			s.ID,
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Task.DomainSlug,
			s.LLMModel,
			fmt.Sprintf("+%.0f%%", s.ProgressDelta),
			len(s.Team),
		})
	}
	tw.Render()

	return nil
}
