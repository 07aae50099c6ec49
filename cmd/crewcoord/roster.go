package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var rosterStats bool

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show the crew roster and availability",
	RunE:  runRoster,
}

func init() {
	rosterCmd.Flags().BoolVar(&rosterStats, "stats", false, "include utilization statistics from the audit log")
}

func runRoster(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	if rosterStats {
		tw.AppendHeader(table.Row{"ID", "Name", "Role", "Style", "Availability", "Avg", "Min", "Collaborations"})
	} else {
		tw.AppendHeader(table.Row{"ID", "Name", "Role", "Style", "Specializations", "Availability"})
	}

	for _, m := range a.registry.List() {
		if rosterStats {
			stats := a.tracker.UtilizationStats(m.ID)
			tw.AppendRow(table.Row{
				m.ID, m.Name, m.Role, string(m.Style),
				fmt.Sprintf("%.0f%%", stats.Current),
				fmt.Sprintf("%.0f%%", stats.Avg),
				fmt.Sprintf("%.0f%%", stats.Min),
				stats.Collaborations,
			})
		} else {
			tw.AppendRow(table.Row{
				m.ID, m.Name, m.Role, string(m.Style),
				strings.Join(m.Specializations, ", "),
				fmt.Sprintf("%.0f%%", m.Availability),
			})
		}
	}

	tw.Render()
	return nil
}
