package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Card(classes string, children ...g.Node) g.Node {
	return h.Div(
		h.Class(Classes("card", classes)),
		g.Group(children),
	)
}
