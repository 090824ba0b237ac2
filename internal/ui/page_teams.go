package ui

import (
	"fmt"

	"hrboard/internal/hr"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type teamRowData struct {
	Filter      string
	Name        string
	URL         string
	Description string
}

func teamsListPage(user hr.User, rows []teamRowData) Node {
	tableRows := make([]Node, 0, len(rows))
	for i := range rows {
		row := rows[i]
		tableRows = append(tableRows, Tr(
			data.Show(containsExpr(row.Filter)),
			Td(A(Href(row.URL), Text(row.Name))),
			Td(Text(row.Description)),
		))
	}
	tableNode := Node(emptyStateCard("No teams found yet.", "Create team", "/teams/new"))
	if len(tableRows) > 0 {
		tableNode = Div(Class(cardClass("table-wrap")), Table(Class("data-table"),
			THead(Tr(Th(Text("Name")), Th(Text("Description")))),
			TBody(Group(tableRows)),
		))
	}
	return appPage(
		"Teams",
		"teams",
		user,
		pageToolbar("/teams/new", "Create team"),
		quickFilterCard("Filter by team name or description"),
		tableNode,
	)
}

type teamDetailPageData struct {
	User      hr.User
	Team      hr.Team
	Members   []hr.Employee
	CSRFField func() Node
}

func teamDetailPage(d teamDetailPageData) Node {
	t := d.Team
	basePath := fmt.Sprintf("/teams/%d", t.ID)

	meta := Div(
		Class(cardClass()),
		H2(Text(t.Name)),
		P(Text(dashIfEmpty(t.Description))),
		Div(Class("d-flex gap-2"),
			A(Href(basePath+"/edit"), Class("btn btn-sm"), Text("Edit")),
			Form(
				Method("post"),
				Action(basePath+"/delete"),
				d.CSRFField(),
				Button(Type("submit"), Class(dangerButtonClass()), Text("Delete")),
			),
		),
	)

	memberRows := make([]Node, 0, len(d.Members))
	for i := range d.Members {
		m := d.Members[i]
		memberRows = append(memberRows, Tr(
			Td(A(Href(fmt.Sprintf("/employees/%d", m.ID)), Text(m.FullName()))),
			Td(Text(m.Email)),
			Td(Text(dashIfEmpty(m.Position))),
		))
	}
	membersNode := Node(P(Class(mutedClass()), Text("No members yet. Assign employees from their detail pages.")))
	if len(memberRows) > 0 {
		membersNode = Table(Class("data-table"),
			THead(Tr(Th(Text("Name")), Th(Text("Email")), Th(Text("Position")))),
			TBody(Group(memberRows)),
		)
	}
	members := Div(
		Class(cardClass()),
		H2(Text(fmt.Sprintf("Members (%d)", len(d.Members)))),
		membersNode,
	)

	return appPage(t.Name, "teams", d.User, meta, members)
}

func teamFormPage(user hr.User, title, action string, t hr.Team, csrfFieldProvider func() Node) Node {
	return formPage(user, title, "teams", action, csrfFieldProvider,
		Label(Text("Name")),
		Input(Name("name"), Value(t.Name), Required()),
		Label(Text("Description")),
		Textarea(Name("description"), Text(t.Description)),
	)
}
