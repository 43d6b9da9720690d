package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type SectionProps struct {
	ID      string
	Title   string
	Eyebrow string
}

// Section is a labelled content block with an optional eyebrow above its heading.
func Section(props SectionProps, children ...g.Node) g.Node {
	return h.Section(
		g.If(props.ID != "", h.ID(props.ID)),
		h.Class("section"),
		g.Attr("aria-label", props.Title),
		h.Div(
			h.Class("section__inner"),
			h.Div(
				h.Class("section__head"),
				g.If(props.Eyebrow != "", h.P(h.Class("eyebrow"), g.Text(props.Eyebrow))),
				h.H2(h.Class("section__title"), g.Text(props.Title)),
			),
			g.Group(children),
		),
	)
}
