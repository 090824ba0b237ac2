package ui

import (
	"net/http"

	"hrboard/internal/hr"
)

func (h *Handler) AuditList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := hr.LogFilter{
		Page:         formInt(q, "page"),
		Action:       formString(q, "action"),
		ResourceType: formString(q, "resource_type"),
		StartDate:    formString(q, "start_date"),
		EndDate:      formString(q, "end_date"),
	}

	page, err := h.Audit.Logs(r.Context(), filter)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	stats, err := h.Audit.Stats(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	rows := make([]auditRowData, 0, len(page.Logs))
	for i := range page.Logs {
		l := page.Logs[i]
		rows = append(rows, auditRowData{
			When:     l.CreatedAt,
			Who:      dashIfEmpty(l.UserName),
			Action:   l.Action,
			Resource: l.ResourceType,
			Details:  dashIfEmpty(l.Details),
		})
	}

	// Pagination links carry the active filters, not the page number.
	carried := filter
	carried.Page = 0
	renderHTML(w, http.StatusOK, auditListPage(auditListPageData{
		User:        h.currentUser(),
		Filter:      filter,
		FilterQuery: carried.Values().Encode(),
		Rows:        rows,
		Pagination:  page.Pagination,
		Stats:       stats,
	}))
}
