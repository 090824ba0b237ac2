package ui

import (
	"errors"
	"log/slog"
	"net/http"

	"hrboard/internal/apiclient"
	"hrboard/internal/hr"
	"hrboard/internal/session"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Sessions   *session.Store
	Employees  *hr.Employees
	Teams      *hr.Teams
	Audit      *hr.Audit
	Logger     *slog.Logger
	Production bool
}

func NewHandler(
	sessions *session.Store,
	employees *hr.Employees,
	teams *hr.Teams,
	audit *hr.Audit,
	logger *slog.Logger,
	production bool,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Sessions:   sessions,
		Employees:  employees,
		Teams:      teams,
		Audit:      audit,
		Logger:     logger,
		Production: production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// renderServiceError maps API failures to error pages. An expired session is
// already cleared by the client adapter before the error reaches a handler,
// so a 401 here just redirects to the sign-in page.
func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case http.StatusNotFound:
			renderHTML(w, http.StatusNotFound, errorPage("Not Found", apiErr.Message))
			return
		case http.StatusConflict:
			renderHTML(w, http.StatusConflict, errorPage("Conflict", apiErr.Message))
			return
		case http.StatusBadRequest:
			renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", apiErr.Message))
			return
		}
	}
	h.Logger.Error("page load failed", "path", r.URL.Path, "error", err)
	renderHTML(w, http.StatusBadGateway, errorPage("Unexpected Error", "The HR service could not be reached. Check that the API host is up and try again."))
}

func (h *Handler) currentUser() hr.User {
	if u := h.Sessions.User(); u != nil {
		return *u
	}
	return hr.User{Name: "unknown"}
}

// RequireSession gates the app pages behind an authenticated session.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Sessions.State() != session.StateAuthenticated {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseFormOrRenderBadRequest(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "The submitted form could not be parsed."))
		return false
	}
	return true
}
