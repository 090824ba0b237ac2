// Package cli implements the hr command-line interface. Both the terminal
// commands and the embedded web UI share one client core: a session store, a
// bearer-authenticated HTTP adapter, and the cached domain services.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hrboard/internal/apiclient"
	"hrboard/internal/hr"
	"hrboard/internal/output"
	"hrboard/internal/querycache"
	"hrboard/internal/session"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		outputFormat, _ := rootCmd.PersistentFlags().GetString("output")
		if outputFormat == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) {
				errObj["http_status"] = apiErr.Status
			}
			_ = PrintJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// app bundles the client core the commands share. It is assembled once in
// PersistentPreRunE, after the host has been resolved.
type app struct {
	Client    *apiclient.Client
	Sessions  *session.Store
	Employees *hr.Employees
	Teams     *hr.Teams
	Audit     *hr.Audit
	Printer   *output.Printer
}

// requireSession restores the persisted credential and fails if it does not
// resolve to an authenticated identity. Commands that talk to protected
// endpoints call it first.
func (a *app) requireSession(cmd *cobra.Command) error {
	if err := a.Sessions.Initialize(cmd.Context()); err != nil {
		return err
	}
	if a.Sessions.State() != session.StateAuthenticated {
		return errors.New("not signed in: run 'hr login' first")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		host    string
		outputF string
		profile string
		noColor bool
	)
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "hr",
		Short:         "HR Board CLI",
		Long:          "Command-line interface and embedded web UI for the HR management API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("HR_HOST"); v != "" {
					host = v
				} else if p.Host != "" {
					host = p.Host
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("HR_OUTPUT"); v != "" {
					outputF = v
				} else if p.Output != "" {
					outputF = p.Output
				}
			}
			if err := validateOutputFormat(outputF); err != nil {
				return err
			}

			client := apiclient.New(host)
			store := session.NewStore(client, session.NewFileStore(CredentialsPath()), nil)
			client.Tokens = store

			cache := querycache.New()
			a.Client = client
			a.Sessions = store
			a.Employees = hr.NewEmployees(client, cache, nil)
			a.Teams = hr.NewTeams(client, cache, nil)
			a.Audit = hr.NewAudit(client, cache)
			a.Printer = output.NewPrinter(output.ResolveColors(noColor))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "API host URL")
	rootCmd.PersistentFlags().StringVarP(&outputF, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newRegisterCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoamiCmd(a))
	rootCmd.AddCommand(newAuthCmd(a))

	rootCmd.AddCommand(newEmployeesCmd(a))
	rootCmd.AddCommand(newTeamsCmd(a))
	rootCmd.AddCommand(newAuditCmd(a))

	rootCmd.AddCommand(newUICmd(a))

	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// CredentialsPath returns the path to ~/.hr/credentials.yaml.
func CredentialsPath() string {
	return filepath.Join(ConfigDir(), "credentials.yaml")
}

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
