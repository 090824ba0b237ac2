package ui

import (
	"hrboard/internal/hr"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

type dashboardCardData struct {
	Title       string
	Value       string
	Description string
	Href        string
	LinkLabel   string
}

func dashboardPage(user hr.User, cards []dashboardCardData) gomponents.Node {
	nodes := make([]gomponents.Node, 0, len(cards))
	for i := range cards {
		c := cards[i]
		nodes = append(nodes, html.Div(
			html.Class(cardClass()),
			html.H2(gomponents.Text(c.Title)),
			html.P(html.Class("stat-value"), gomponents.Text(c.Value)),
			html.P(gomponents.Text(c.Description)),
			html.A(html.Href(c.Href), gomponents.Text(c.LinkLabel)),
		))
	}
	return appPage("Dashboard", "home", user, html.Div(html.Class("grid"), gomponents.Group(nodes)))
}
