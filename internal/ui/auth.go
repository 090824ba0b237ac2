package ui

import (
	"errors"
	"net/http"
	"net/url"

	"hrboard/internal/apiclient"
	"hrboard/internal/session"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.Sessions.State() == session.StateAuthenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, loginPage(r.URL.Query().Get("error"), csrfFieldProvider(r)))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error="+url.QueryEscape("invalid form"), http.StatusSeeOther)
		return
	}
	email := formString(r.Form, "email")
	password := r.Form.Get("password")
	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error="+url.QueryEscape("email and password are required"), http.StatusSeeOther)
		return
	}

	if _, err := h.Sessions.Login(r.Context(), email, password); err != nil {
		http.Redirect(w, r, "/login?error="+url.QueryEscape(loginErrorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.Sessions.State() == session.StateAuthenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, registerPage(r.URL.Query().Get("error"), csrfFieldProvider(r)))
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error="+url.QueryEscape("invalid form"), http.StatusSeeOther)
		return
	}
	req := session.RegisterRequest{
		Name:     formString(r.Form, "name"),
		Email:    formString(r.Form, "email"),
		Password: r.Form.Get("password"),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Redirect(w, r, "/register?error="+url.QueryEscape("all fields are required"), http.StatusSeeOther)
		return
	}

	if _, err := h.Sessions.Register(r.Context(), req); err != nil {
		http.Redirect(w, r, "/register?error="+url.QueryEscape(loginErrorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func loginErrorMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "could not reach the HR service"
}
