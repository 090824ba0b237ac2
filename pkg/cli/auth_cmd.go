package cli

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hrboard/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session credential",
		Example: `  # Prompt for the password interactively
  hr login --email you@example.com

  # Non-interactive (password on the flag is visible in shell history)
  hr login --email you@example.com --password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := a.Sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, user)
			}
			a.Printer.Success("Signed in as %s <%s>", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			user, err := a.Sessions.Register(cmd.Context(), session.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, user)
			}
			a.Printer.Success("Account created, signed in as %s <%s>", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the persisted credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Sessions.Initialize(cmd.Context()); err != nil {
				return err
			}
			a.Sessions.Logout(cmd.Context())
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "signed out"})
			}
			a.Printer.Success("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(cmd); err != nil {
				return err
			}
			user := a.Sessions.User()
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, user)
			}
			a.Printer.Print("%s <%s> (%s)", user.Name, user.Email, dashIfEmpty(user.Role))
			return nil
		},
	}
}

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Session inspection helpers",
	}
	cmd.AddCommand(newAuthStatusCmd(a))
	return cmd
}

func newAuthStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session state and credential expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Sessions.Initialize(cmd.Context()); err != nil {
				return err
			}

			state := a.Sessions.State().String()
			token := a.Sessions.Token()
			expiry := tokenExpiry(token)

			if getOutputFormat(cmd) == "json" {
				obj := map[string]interface{}{"state": state}
				if user := a.Sessions.User(); user != nil {
					obj["user"] = user
				}
				if token != "" {
					obj["token"] = maskSecret(token)
				}
				if expiry != "" {
					obj["token_expires"] = expiry
				}
				return PrintJSON(os.Stdout, obj)
			}

			a.Printer.Print("State: %s", state)
			if user := a.Sessions.User(); user != nil {
				a.Printer.Print("User:  %s <%s>", user.Name, user.Email)
			}
			if token != "" {
				a.Printer.Print("Token: %s", maskSecret(token))
			}
			if expiry != "" {
				a.Printer.Print("Expires: %s", expiry)
			}
			return nil
		},
	}
}

// tokenExpiry reads the exp claim without verifying the signature. The
// server is the authority on validity; this is display only.
func tokenExpiry(token string) string {
	if token == "" {
		return ""
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}
	return exp.Format(time.RFC3339)
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
