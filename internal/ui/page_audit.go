package ui

import (
	"fmt"

	"hrboard/internal/hr"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type auditRowData struct {
	When     string
	Who      string
	Action   string
	Resource string
	Details  string
}

type auditListPageData struct {
	User        hr.User
	Filter      hr.LogFilter
	FilterQuery string
	Rows        []auditRowData
	Pagination  hr.Pagination
	Stats       *hr.Stats
}

func auditListPage(d auditListPageData) Node {
	statCards := []Node{
		Div(Class(cardClass("stat")),
			H2(Text("Total Actions")),
			P(Class("stat-value"), Text(fmt.Sprintf("%d", d.Stats.TotalActions()))),
		),
	}
	for i := range d.Stats.ActionStats {
		s := d.Stats.ActionStats[i]
		statCards = append(statCards, Div(Class(cardClass("stat")),
			H2(Text(s.Action)),
			P(Class("stat-value"), Text(fmt.Sprintf("%d", s.Count))),
		))
	}

	tableRows := make([]Node, 0, len(d.Rows))
	for i := range d.Rows {
		row := d.Rows[i]
		tableRows = append(tableRows, Tr(
			Td(Text(row.When)),
			Td(Text(row.Who)),
			Td(statusLabel(row.Action, auditActionTone(row.Action))),
			Td(Text(row.Resource)),
			Td(Text(row.Details)),
		))
	}
	tableNode := Node(emptyStateCard("No audit entries match the current filters.", "", ""))
	if len(tableRows) > 0 {
		tableNode = Div(Class(cardClass("table-wrap")), Table(Class("data-table"),
			THead(Tr(Th(Text("When")), Th(Text("User")), Th(Text("Action")), Th(Text("Resource")), Th(Text("Details")))),
			TBody(Group(tableRows)),
		))
	}

	return appPage(
		"Audit Trail",
		"audit",
		d.User,
		Div(Class("grid"), Group(statCards)),
		auditFilterCard(d.Filter),
		tableNode,
		paginationCard("/audit", d.FilterQuery, d.Pagination),
	)
}

func auditFilterCard(f hr.LogFilter) Node {
	return Div(
		Class(cardClass("toolbar")),
		Form(
			Class("d-flex flex-wrap flex-items-end gap-2"),
			Method("get"),
			Action("/audit"),
			Div(
				Label(Class(mutedClass()), Text("Action")),
				Select(Class("form-select"), Name("action"),
					optionSelected("", "All actions", f.Action),
					optionSelected("create", "create", f.Action),
					optionSelected("update", "update", f.Action),
					optionSelected("delete", "delete", f.Action),
					optionSelected("login", "login", f.Action),
					optionSelected("logout", "logout", f.Action),
				),
			),
			Div(
				Label(Class(mutedClass()), Text("Resource")),
				Select(Class("form-select"), Name("resource_type"),
					optionSelected("", "All resources", f.ResourceType),
					optionSelected("employee", "employee", f.ResourceType),
					optionSelected("team", "team", f.ResourceType),
					optionSelected("user", "user", f.ResourceType),
				),
			),
			Div(
				Label(Class(mutedClass()), Text("From")),
				Input(Type("date"), Class("form-control"), Name("start_date"), Value(f.StartDate)),
			),
			Div(
				Label(Class(mutedClass()), Text("To")),
				Input(Type("date"), Class("form-control"), Name("end_date"), Value(f.EndDate)),
			),
			Button(Type("submit"), Class(primaryButtonClass()), Text("Apply")),
			A(Href("/audit"), Class("btn"), Text("Reset")),
		),
	)
}

func auditActionTone(action string) string {
	switch action {
	case "create", "login":
		return "success"
	case "delete":
		return "danger"
	default:
		return "accent"
	}
}
