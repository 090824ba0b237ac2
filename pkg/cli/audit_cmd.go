package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"hrboard/internal/hr"
	"hrboard/internal/output"
)

func newAuditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit trail",
	}

	cmd.AddCommand(newAuditLogsCmd(a))
	cmd.AddCommand(newAuditStatsCmd(a))

	return cmd
}

func newAuditLogsCmd(a *app) *cobra.Command {
	var filter hr.LogFilter

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List audit entries",
		Example: `  # Recent activity, first page
  hr audit logs

  # Deletions on teams during January
  hr audit logs --action delete --resource team --start-date 2026-01-01 --end-date 2026-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			page, err := a.Audit.Logs(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, page)
			}

			table := output.NewTable([]string{"When", "User", "Action", "Resource", "Details"})
			for _, l := range page.Logs {
				resource := l.ResourceType
				if l.ResourceID != nil {
					resource = fmt.Sprintf("%s/%d", l.ResourceType, *l.ResourceID)
				}
				table.AddRow([]string{
					l.CreatedAt,
					dashIfEmpty(l.UserName),
					l.Action,
					resource,
					dashIfEmpty(l.Details),
				})
			}
			table.Render()
			p := page.Pagination
			a.Printer.Print("Page %d of %d (%d entries)", p.Page, p.Pages, p.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Entries per page")
	cmd.Flags().StringVar(&filter.Action, "action", "", "Filter by action (create, update, delete, ...)")
	cmd.Flags().StringVar(&filter.ResourceType, "resource", "", "Filter by resource type (employee, team, user)")
	cmd.Flags().StringVar(&filter.StartDate, "start-date", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.EndDate, "end-date", "", "Latest date (YYYY-MM-DD)")

	return cmd
}

func newAuditStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show activity summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			stats, err := a.Audit.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, stats)
			}

			table := output.NewTable([]string{"Action", "Count"})
			for _, s := range stats.ActionStats {
				table.AddRow([]string{s.Action, strconv.Itoa(s.Count)})
			}
			table.Render()
			a.Printer.Print("Total actions: %d", stats.TotalActions())
			return nil
		},
	}
}
