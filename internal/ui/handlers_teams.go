package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrboard/internal/hr"
)

func (h *Handler) TeamsList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Teams.List(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	rows := make([]teamRowData, 0, len(items))
	for i := range items {
		t := items[i]
		rows = append(rows, teamRowData{
			Filter:      t.Name + " " + t.Description,
			Name:        t.Name,
			URL:         fmt.Sprintf("/teams/%d", t.ID),
			Description: dashIfEmpty(t.Description),
		})
	}
	renderHTML(w, http.StatusOK, teamsListPage(h.currentUser(), rows))
}

func (h *Handler) TeamsDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "teamID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Team id must be a number."))
		return
	}
	team, err := h.Teams.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	members, err := h.Teams.Members(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, teamDetailPage(teamDetailPageData{
		User:      h.currentUser(),
		Team:      *team,
		Members:   members,
		CSRFField: csrfFieldProvider(r),
	}))
}

func (h *Handler) TeamsNew(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, teamFormPage(h.currentUser(), "New Team", "/teams", hr.Team{}, csrfFieldProvider(r)))
}

func (h *Handler) TeamsCreate(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	created, err := h.Teams.Create(r.Context(), hr.TeamRequest{
		Name:        formString(r.Form, "name"),
		Description: formString(r.Form, "description"),
	})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/teams/%d", created.ID), http.StatusSeeOther)
}

func (h *Handler) TeamsEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "teamID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Team id must be a number."))
		return
	}
	team, err := h.Teams.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, teamFormPage(h.currentUser(), "Edit Team", fmt.Sprintf("/teams/%d", id), *team, csrfFieldProvider(r)))
}

func (h *Handler) TeamsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "teamID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Team id must be a number."))
		return
	}
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	if _, err := h.Teams.Update(r.Context(), id, hr.TeamRequest{
		Name:        formString(r.Form, "name"),
		Description: formString(r.Form, "description"),
	}); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/teams/%d", id), http.StatusSeeOther)
}

func (h *Handler) TeamsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "teamID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Team id must be a number."))
		return
	}
	if err := h.Teams.Delete(r.Context(), id); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}
