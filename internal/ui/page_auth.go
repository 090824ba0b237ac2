package ui

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

func loginPage(errMsg string, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	content := []gomponents.Node{
		html.H1(gomponents.Text("HR Board")),
		html.P(gomponents.Text("Sign in to manage employees, teams, and the audit trail.")),
		html.Form(
			html.Method("post"),
			html.Action("/login"),
			html.Class("login-form"),
			csrfFieldProvider(),
			html.Label(gomponents.Text("Email")),
			html.Input(
				html.Type("email"),
				html.Name("email"),
				html.Placeholder("you@example.com"),
				html.AutoComplete("email"),
				html.Required(),
			),
			html.Label(gomponents.Text("Password")),
			html.Input(
				html.Type("password"),
				html.Name("password"),
				html.AutoComplete("current-password"),
				html.Required(),
			),
			html.Button(
				html.Type("submit"),
				html.Class("btn btn-primary"),
				gomponents.Text("Sign In"),
			),
		),
		html.P(
			html.Class("color-fg-muted text-small"),
			gomponents.Text("New here? "),
			html.A(html.Href("/register"), gomponents.Text("Create an account")),
		),
	}
	return authShell("Sign in", errMsg, content)
}

func registerPage(errMsg string, csrfFieldProvider func() gomponents.Node) gomponents.Node {
	content := []gomponents.Node{
		html.H1(gomponents.Text("HR Board")),
		html.P(gomponents.Text("Create an account to get started.")),
		html.Form(
			html.Method("post"),
			html.Action("/register"),
			html.Class("login-form"),
			csrfFieldProvider(),
			html.Label(gomponents.Text("Name")),
			html.Input(
				html.Name("name"),
				html.Placeholder("Full name"),
				html.AutoComplete("name"),
				html.Required(),
			),
			html.Label(gomponents.Text("Email")),
			html.Input(
				html.Type("email"),
				html.Name("email"),
				html.Placeholder("you@example.com"),
				html.AutoComplete("email"),
				html.Required(),
			),
			html.Label(gomponents.Text("Password")),
			html.Input(
				html.Type("password"),
				html.Name("password"),
				html.AutoComplete("new-password"),
				html.Required(),
			),
			html.Button(
				html.Type("submit"),
				html.Class("btn btn-primary"),
				gomponents.Text("Create Account"),
			),
		),
		html.P(
			html.Class("color-fg-muted text-small"),
			gomponents.Text("Already registered? "),
			html.A(html.Href("/login"), gomponents.Text("Sign in")),
		),
	}
	return authShell("Register", errMsg, content)
}

func authShell(title, errMsg string, content []gomponents.Node) gomponents.Node {
	if errMsg != "" {
		content = append([]gomponents.Node{html.P(html.Class("error"), gomponents.Text(fmt.Sprintf("Error: %s", errMsg)))}, content...)
	}
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | HR Board")),
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.googleapis.com")),
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.gstatic.com"), gomponents.Attr("crossorigin", "")),
			html.Link(html.Rel("stylesheet"), html.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			html.Link(html.Rel("stylesheet"), html.Href("https://cdn.jsdelivr.net/npm/@primer/css@22.1.0/dist/primer.min.css")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		),
		html.Body(
			html.Class("login-body"),
			html.Main(html.Class("login-wrap"), gomponents.Group(content)),
		),
	)
}
