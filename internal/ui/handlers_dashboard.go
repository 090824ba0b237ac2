package ui

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"hrboard/internal/hr"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	var (
		employees []hr.Employee
		teams     []hr.Team
		stats     *hr.Stats
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		employees, err = h.Employees.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = h.Teams.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.Audit.Stats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	today := time.Now().Format("2006-01-02")
	renderHTML(w, http.StatusOK, dashboardPage(h.currentUser(), []dashboardCardData{
		{Title: "Employees", Value: fmt.Sprintf("%d", len(employees)), Description: "People on record across all departments.", Href: "/employees", LinkLabel: "Open employees ->"},
		{Title: "Teams", Value: fmt.Sprintf("%d", len(teams)), Description: "Active teams with assigned members.", Href: "/teams", LinkLabel: "Open teams ->"},
		{Title: "Today's Activity", Value: fmt.Sprintf("%d", stats.ActivityOn(today)), Description: "Actions recorded so far today.", Href: "/audit", LinkLabel: "Open audit trail ->"},
		{Title: "Audit Actions", Value: fmt.Sprintf("%d", stats.TotalActions()), Description: "Recorded changes across the system.", Href: "/audit", LinkLabel: "Open audit trail ->"},
	}))
}
