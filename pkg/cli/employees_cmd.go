package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hrboard/internal/hr"
	"hrboard/internal/output"
)

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employee records",
	}

	cmd.AddCommand(newEmployeesListCmd(a))
	cmd.AddCommand(newEmployeesGetCmd(a))
	cmd.AddCommand(newEmployeesCreateCmd(a))
	cmd.AddCommand(newEmployeesUpdateCmd(a))
	cmd.AddCommand(newEmployeesDeleteCmd(a))
	cmd.AddCommand(newEmployeesAssignCmd(a))
	cmd.AddCommand(newEmployeesUnassignCmd(a))

	return cmd
}

func newEmployeesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			employees, err := a.Employees.List(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, employees)
			}

			table := output.NewTable([]string{"ID", "Name", "Email", "Position", "Department", "Teams"})
			for _, e := range employees {
				teams := make([]string, 0, len(e.Teams))
				for _, t := range e.Teams {
					teams = append(teams, t.Name)
				}
				table.AddRow([]string{
					strconv.FormatInt(e.ID, 10),
					e.FullName(),
					e.Email,
					dashIfEmpty(e.Position),
					dashIfEmpty(e.Department),
					dashIfEmpty(strings.Join(teams, ", ")),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newEmployeesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "employee")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			employee, err := a.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, employee)
			}
			printEmployee(a.Printer, employee)
			return nil
		},
	}
}

func printEmployee(p *output.Printer, e *hr.Employee) {
	p.Print("%s", p.Bold(e.FullName()))
	p.Print("  Email:      %s", e.Email)
	p.Print("  Position:   %s", dashIfEmpty(e.Position))
	p.Print("  Department: %s", dashIfEmpty(e.Department))
	p.Print("  Hire date:  %s", dashIfEmpty(e.HireDate))
	if len(e.Teams) == 0 {
		p.Print("  Teams:      -")
		return
	}
	names := make([]string, 0, len(e.Teams))
	for _, t := range e.Teams {
		names = append(names, fmt.Sprintf("%s (%d)", t.Name, t.ID))
	}
	p.Print("  Teams:      %s", strings.Join(names, ", "))
}

func employeeRequestFlags(cmd *cobra.Command, req *hr.EmployeeRequest) {
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Position, "position", "", "Job position")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().StringVar(&req.HireDate, "hire-date", "", "Hire date (YYYY-MM-DD)")
}

func newEmployeesCreateCmd(a *app) *cobra.Command {
	var req hr.EmployeeRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			created, err := a.Employees.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, created)
			}
			a.Printer.Success("Created employee %s (id %d)", created.FullName(), created.ID)
			return nil
		},
	}

	employeeRequestFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newEmployeesUpdateCmd(a *app) *cobra.Command {
	var req hr.EmployeeRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "employee")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}

			// Unchanged fields keep their current values.
			current, err := a.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			merged := hr.EmployeeRequest{
				FirstName:  current.FirstName,
				LastName:   current.LastName,
				Email:      current.Email,
				Position:   current.Position,
				Department: current.Department,
				HireDate:   current.HireDate,
			}
			flagOverride(cmd.Flags(), "first-name", &merged.FirstName, req.FirstName)
			flagOverride(cmd.Flags(), "last-name", &merged.LastName, req.LastName)
			flagOverride(cmd.Flags(), "email", &merged.Email, req.Email)
			flagOverride(cmd.Flags(), "position", &merged.Position, req.Position)
			flagOverride(cmd.Flags(), "department", &merged.Department, req.Department)
			flagOverride(cmd.Flags(), "hire-date", &merged.HireDate, req.HireDate)

			updated, err := a.Employees.Update(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, updated)
			}
			a.Printer.Success("Updated employee %s (id %d)", updated.FullName(), updated.ID)
			return nil
		},
	}

	employeeRequestFlags(cmd, &req)

	return cmd
}

func newEmployeesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0], "employee")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			if err := a.Employees.Delete(cmd.Context(), id); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"status": "deleted", "id": id})
			}
			a.Printer.Success("Deleted employee %d", id)
			return nil
		},
	}
}

func newEmployeesAssignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <employee-id> <team-id>",
		Short: "Assign an employee to a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := parseIDArg(args[0], "employee")
			if err != nil {
				return err
			}
			teamID, err := parseIDArg(args[1], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			if err := a.Employees.AssignToTeam(cmd.Context(), employeeID, teamID); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"status": "assigned", "employee_id": employeeID, "team_id": teamID})
			}
			a.Printer.Success("Assigned employee %d to team %d", employeeID, teamID)
			return nil
		},
	}
}

func newEmployeesUnassignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <employee-id> <team-id>",
		Short: "Remove an employee from a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := parseIDArg(args[0], "employee")
			if err != nil {
				return err
			}
			teamID, err := parseIDArg(args[1], "team")
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			if err := a.Employees.RemoveFromTeam(cmd.Context(), employeeID, teamID); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]interface{}{"status": "removed", "employee_id": employeeID, "team_id": teamID})
			}
			a.Printer.Success("Removed employee %d from team %d", employeeID, teamID)
			return nil
		},
	}
}

func parseIDArg(raw, kind string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

func flagOverride(flags *pflag.FlagSet, name string, dst *string, value string) {
	if flags.Changed(name) {
		*dst = value
	}
}
