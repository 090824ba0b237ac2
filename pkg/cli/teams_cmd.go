package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"hrboard/internal/hr"
	"hrboard/internal/output"
)

func newTeamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage teams",
	}

	cmd.AddCommand(newTeamsListCmd(a))
	cmd.AddCommand(newTeamsGetCmd(a))
	cmd.AddCommand(newTeamsMembersCmd(a))
	cmd.AddCommand(newTeamsCreateCmd(a))
	cmd.AddCommand(newTeamsUpdateCmd(a))
	cmd.AddCommand(newTeamsDeleteCmd(a))

	return cmd
}

func newTeamsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			teams, err := a.Teams.List(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, teams)
			}

			table := output.NewTable([]string{"ID", "Name", "Description"})
			for _, t := range teams {
				table.AddRow([]string{
					strconv.FormatInt(t.ID, 10),
					t.Name,
					dashIfEmpty(t.Description),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newTeamsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			team, err := a.Teams.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, team)
			}
			a.Printer.Print("%s", a.Printer.Bold(team.Name))
			a.Printer.Print("  ID:          %d", team.ID)
			a.Printer.Print("  Description: %s", dashIfEmpty(team.Description))
			return nil
		},
	}
}

func newTeamsMembersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "members <id>",
		Short: "List the employees on a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			members, err := a.Teams.Members(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, members)
			}

			table := output.NewTable([]string{"ID", "Name", "Email", "Position"})
			for _, m := range members {
				table.AddRow([]string{
					strconv.FormatInt(m.ID, 10),
					m.FullName(),
					m.Email,
					dashIfEmpty(m.Position),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newTeamsCreateCmd(a *app) *cobra.Command {
	var req hr.TeamRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			created, err := a.Teams.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, created)
			}
			a.Printer.Success("Created team %s (id %d)", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Team name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Team description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamsUpdateCmd(a *app) *cobra.Command {
	var req hr.TeamRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}

			current, err := a.Teams.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			merged := hr.TeamRequest{Name: current.Name, Description: current.Description}
			flagOverride(cmd.Flags(), "name", &merged.Name, req.Name)
			flagOverride(cmd.Flags(), "description", &merged.Description, req.Description)

			updated, err := a.Teams.Update(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, updated)
			}
			a.Printer.Success("Updated team %s (id %d)", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Team name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Team description")

	return cmd
}

func newTeamsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			if err := a.Teams.Delete(cmd.Context(), id); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"status": "deleted", "id": id})
			}
			a.Printer.Success("Deleted team %d", id)
			return nil
		},
	}
}
