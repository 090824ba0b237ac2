package cli

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"

	"hrboard/internal/ui"
)

func newUICmd(a *app) *cobra.Command {
	var (
		listen     string
		production bool
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Serve the web UI",
		Long:  "Serve the browser UI locally. Pages render server-side and talk to the HR API through the same session as the CLI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Restore any persisted session so the browser lands on the
			// dashboard instead of the sign-in page.
			if err := a.Sessions.Initialize(cmd.Context()); err != nil {
				return err
			}

			h := ui.NewHandler(a.Sessions, a.Employees, a.Teams, a.Audit, nil, production)

			r := chi.NewRouter()
			r.Use(chimw.Logger)
			r.Use(chimw.Recoverer)
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
				AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type", "X-CSRF-Token"},
				AllowCredentials: true,
			}))
			ui.MountRoutes(r, h)

			a.Printer.Print("HR Board UI listening on http://%s", displayAddr(listen))
			if err := http.ListenAndServe(listen, r); err != nil {
				return fmt.Errorf("serve ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8090", "Listen address")
	cmd.Flags().BoolVar(&production, "production", false, "Mark cookies Secure (serve behind TLS)")

	return cmd
}

func displayAddr(listen string) string {
	if len(listen) > 0 && listen[0] == ':' {
		return "localhost" + listen
	}
	return listen
}
