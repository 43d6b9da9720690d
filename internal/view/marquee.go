package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// The strip holds MarqueeRepeat copies of the list and the animation moves it by
// exactly one copy, so the loop restarts on a repetition boundary.
const (
	MarqueeRepeat         = 3
	MarqueeLoopOffset     = "-33.333%"
	DefaultMarqueeSeconds = 18
)

func MarqueeItems(items []string) []string {
	out := make([]string, 0, len(items)*MarqueeRepeat)
	for range MarqueeRepeat {
		out = append(out, items...)
	}
	return out
}

func Marquee(items []string) g.Node {
	return h.Div(
		h.Class("marquee"),
		g.Attr("aria-hidden", "true"),
		h.Div(
			h.Class("marquee__track animate-marquee"),
			g.Map(MarqueeItems(items), func(s string) g.Node {
				return Tag("tag--marquee", s)
			}),
		),
	)
}

func Tag(classes, label string) g.Node {
	return h.Span(h.Class(Classes("tag", classes)), g.Text(label))
}
