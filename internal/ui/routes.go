package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrboard/internal/ui/assets"
)

func MountRoutes(r chi.Router, h *Handler) {
	r.Use(h.EnsureCSRFToken)
	r.Use(h.RequireCSRF)

	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.RegisterSubmit)
	r.Post("/logout", h.Logout)

	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Get("/", h.Home)

		r.Get("/employees", h.EmployeesList)
		r.Get("/employees/new", h.EmployeesNew)
		r.Post("/employees", h.EmployeesCreate)
		r.Get("/employees/{employeeID}", h.EmployeesDetail)
		r.Get("/employees/{employeeID}/edit", h.EmployeesEdit)
		r.Post("/employees/{employeeID}", h.EmployeesUpdate)
		r.Post("/employees/{employeeID}/delete", h.EmployeesDelete)
		r.Post("/employees/{employeeID}/teams", h.EmployeesAssignTeam)
		r.Post("/employees/{employeeID}/teams/{teamID}/remove", h.EmployeesRemoveTeam)

		r.Get("/teams", h.TeamsList)
		r.Get("/teams/new", h.TeamsNew)
		r.Post("/teams", h.TeamsCreate)
		r.Get("/teams/{teamID}", h.TeamsDetail)
		r.Get("/teams/{teamID}/edit", h.TeamsEdit)
		r.Post("/teams/{teamID}", h.TeamsUpdate)
		r.Post("/teams/{teamID}/delete", h.TeamsDelete)

		r.Get("/audit", h.AuditList)
	})
}
