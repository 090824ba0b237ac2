package ui

import (
	"fmt"

	"hrboard/internal/hr"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

type employeeRowData struct {
	Filter     string
	Name       string
	URL        string
	Email      string
	Position   string
	Department string
	Teams      string
}

func employeesListPage(user hr.User, rows []employeeRowData) Node {
	tableRows := make([]Node, 0, len(rows))
	for i := range rows {
		row := rows[i]
		tableRows = append(tableRows, Tr(
			data.Show(containsExpr(row.Filter)),
			Td(A(Href(row.URL), Text(row.Name))),
			Td(Text(row.Email)),
			Td(Text(row.Position)),
			Td(Text(row.Department)),
			Td(Text(row.Teams)),
		))
	}
	tableNode := Node(emptyStateCard("No employees found yet.", "Add employee", "/employees/new"))
	if len(tableRows) > 0 {
		tableNode = Div(Class(cardClass("table-wrap")), Table(Class("data-table"),
			THead(Tr(Th(Text("Name")), Th(Text("Email")), Th(Text("Position")), Th(Text("Department")), Th(Text("Teams")))),
			TBody(Group(tableRows)),
		))
	}
	return appPage(
		"Employees",
		"employees",
		user,
		pageToolbar("/employees/new", "Add employee"),
		quickFilterCard("Filter by name, email, position, or department"),
		tableNode,
	)
}

type employeeDetailPageData struct {
	User      hr.User
	Employee  hr.Employee
	Available []hr.Team
	CSRFField func() Node
}

func employeeDetailPage(d employeeDetailPageData) Node {
	e := d.Employee
	basePath := fmt.Sprintf("/employees/%d", e.ID)

	meta := Div(
		Class(cardClass()),
		H2(Text(e.FullName())),
		Dl(Class("meta-list"),
			Dt(Text("Email")), Dd(Text(e.Email)),
			Dt(Text("Position")), Dd(Text(dashIfEmpty(e.Position))),
			Dt(Text("Department")), Dd(Text(dashIfEmpty(e.Department))),
			Dt(Text("Hire date")), Dd(Text(dashIfEmpty(e.HireDate))),
		),
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

	teamRows := make([]Node, 0, len(e.Teams))
	for i := range e.Teams {
		t := e.Teams[i]
		teamRows = append(teamRows, Tr(
			Td(A(Href(fmt.Sprintf("/teams/%d", t.ID)), Text(t.Name))),
			Td(Text(dashIfEmpty(t.Description))),
			Td(Form(
				Method("post"),
				Action(fmt.Sprintf("%s/teams/%d/remove", basePath, t.ID)),
				d.CSRFField(),
				Button(Type("submit"), Class(dangerButtonClass()), Text("Remove")),
			)),
		))
	}
	teamsNode := Node(P(Class(mutedClass()), Text("Not assigned to any team.")))
	if len(teamRows) > 0 {
		teamsNode = Table(Class("data-table"),
			THead(Tr(Th(Text("Team")), Th(Text("Description")), Th(Text("")))),
			TBody(Group(teamRows)),
		)
	}

	assignNode := Node(P(Class(mutedClass()), Text("Already a member of every team.")))
	if len(d.Available) > 0 {
		options := make([]Node, 0, len(d.Available))
		for i := range d.Available {
			t := d.Available[i]
			options = append(options, Option(Value(fmt.Sprintf("%d", t.ID)), Text(t.Name)))
		}
		assignNode = Form(
			Class("d-flex gap-2 flex-items-center"),
			Method("post"),
			Action(basePath+"/teams"),
			d.CSRFField(),
			Select(Class("form-select"), Name("team_id"), Group(options)),
			Button(Type("submit"), Class(primaryButtonClass()), Text("Assign")),
		)
	}

	membership := Div(
		Class(cardClass()),
		H2(Text("Teams")),
		teamsNode,
		H3(Class("mt-3"), Text("Assign to team")),
		assignNode,
	)

	return appPage(e.FullName(), "employees", d.User, meta, membership)
}

func employeeFormPage(user hr.User, title, action string, e hr.Employee, csrfFieldProvider func() Node) Node {
	return formPage(user, title, "employees", action, csrfFieldProvider,
		Label(Text("First name")),
		Input(Name("first_name"), Value(e.FirstName), Required()),
		Label(Text("Last name")),
		Input(Name("last_name"), Value(e.LastName), Required()),
		Label(Text("Email")),
		Input(Type("email"), Name("email"), Value(e.Email), Required()),
		Label(Text("Position")),
		Input(Name("position"), Value(e.Position)),
		Label(Text("Department")),
		Input(Name("department"), Value(e.Department)),
		Label(Text("Hire date")),
		Input(Type("date"), Name("hire_date"), Value(e.HireDate)),
	)
}
