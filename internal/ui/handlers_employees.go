package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrboard/internal/hr"
)

func (h *Handler) EmployeesList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Employees.List(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	rows := make([]employeeRowData, 0, len(items))
	for i := range items {
		e := items[i]
		teamNames := make([]string, 0, len(e.Teams))
		for _, t := range e.Teams {
			teamNames = append(teamNames, t.Name)
		}
		rows = append(rows, employeeRowData{
			Filter:     e.FullName() + " " + e.Email + " " + e.Position + " " + e.Department,
			Name:       e.FullName(),
			URL:        fmt.Sprintf("/employees/%d", e.ID),
			Email:      e.Email,
			Position:   dashIfEmpty(e.Position),
			Department: dashIfEmpty(e.Department),
			Teams:      strings.Join(teamNames, ", "),
		})
	}
	renderHTML(w, http.StatusOK, employeesListPage(h.currentUser(), rows))
}

func (h *Handler) EmployeesDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	employee, err := h.Employees.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	// Teams the employee is not yet on populate the assignment select.
	teams, err := h.Teams.List(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	assigned := make(map[int64]bool, len(employee.Teams))
	for _, t := range employee.Teams {
		assigned[t.ID] = true
	}
	available := make([]hr.Team, 0, len(teams))
	for _, t := range teams {
		if !assigned[t.ID] {
			available = append(available, t)
		}
	}

	renderHTML(w, http.StatusOK, employeeDetailPage(employeeDetailPageData{
		User:      h.currentUser(),
		Employee:  *employee,
		Available: available,
		CSRFField: csrfFieldProvider(r),
	}))
}

func (h *Handler) EmployeesNew(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, employeeFormPage(h.currentUser(), "New Employee", "/employees", hr.Employee{}, csrfFieldProvider(r)))
}

func (h *Handler) EmployeesCreate(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	created, err := h.Employees.Create(r.Context(), employeeRequestFromForm(r.Form))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/employees/%d", created.ID), http.StatusSeeOther)
}

func (h *Handler) EmployeesEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	employee, err := h.Employees.Get(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, employeeFormPage(h.currentUser(), "Edit Employee", fmt.Sprintf("/employees/%d", id), *employee, csrfFieldProvider(r)))
}

func (h *Handler) EmployeesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	if _, err := h.Employees.Update(r.Context(), id, employeeRequestFromForm(r.Form)); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/employees/%d", id), http.StatusSeeOther)
}

func (h *Handler) EmployeesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	if err := h.Employees.Delete(r.Context(), id); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

func (h *Handler) EmployeesAssignTeam(w http.ResponseWriter, r *http.Request) {
	employeeID, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	teamID, err := formInt64(r.Form, "team_id")
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Select a team to assign."))
		return
	}
	if err := h.Employees.AssignToTeam(r.Context(), employeeID, teamID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/employees/%d", employeeID), http.StatusSeeOther)
}

func (h *Handler) EmployeesRemoveTeam(w http.ResponseWriter, r *http.Request) {
	employeeID, err := parseID(chi.URLParam(r, "employeeID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Employee id must be a number."))
		return
	}
	teamID, err := parseID(chi.URLParam(r, "teamID"))
	if err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Team id must be a number."))
		return
	}
	if err := h.Employees.RemoveFromTeam(r.Context(), employeeID, teamID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/employees/%d", employeeID), http.StatusSeeOther)
}

func employeeRequestFromForm(form map[string][]string) hr.EmployeeRequest {
	return hr.EmployeeRequest{
		FirstName:  formString(form, "first_name"),
		LastName:   formString(form, "last_name"),
		Email:      formString(form, "email"),
		Position:   formString(form, "position"),
		Department: formString(form, "department"),
		HireDate:   formString(form, "hire_date"),
	}
}
