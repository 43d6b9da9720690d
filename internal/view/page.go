package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3zk9/portfolio/internal/domain/profile"
	"github.com/3zk9/portfolio/internal/domain/site"
)

const (
	StylesheetPath = "assets/site.css"
	LoaderPath     = "assets/loader.js"
	WasmPath       = "assets/app.wasm"
	WasmExecPath   = "assets/wasm_exec.js"
)

type PageData struct {
	Profile        *profile.Profile
	Year           int
	Base           string
	MarqueeSeconds int
	// Theme is read by the browser runtime and applied to the root on mount.
	Theme string
	// Runtime adds the wasm runtime scripts that mount the browser effects.
	Runtime bool
}

type NavLink struct {
	Href  string
	Label string
}

type contentSection struct {
	props SectionProps
	label string
	body  func(PageData) g.Node
}

var sections = []contentSection{
	{SectionProps{ID: "education", Title: "Education", Eyebrow: "Academic Background"}, "Education", educationBody},
	{SectionProps{ID: "experience", Title: "Experience", Eyebrow: "Professional Roles"}, "Experience", experienceBody},
	{SectionProps{ID: "projects", Title: "Technical Projects", Eyebrow: "Portfolio"}, "Projects", projectsBody},
	{SectionProps{ID: "skills", Title: "Technical Skills", Eyebrow: "Toolkit"}, "Skills", skillsBody},
	{SectionProps{ID: "contact", Title: "Let's work together", Eyebrow: "Contact"}, "Contact", contactBody},
}

// NavLinks lists the header links; each one targets a rendered section.
func NavLinks() []NavLink {
	links := make([]NavLink, len(sections))
	for i, s := range sections {
		links[i] = NavLink{Href: "#" + s.props.ID, Label: s.label}
	}
	return links
}

func Page(d PageData) g.Node {
	p := d.Profile
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(d.Theme != "", g.Attr("data-theme", d.Theme)),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(p.Tagline)),
				g.El("title", g.Text(p.Name+" · "+p.Role)),
				h.Link(h.Rel("stylesheet"), h.Href(site.Asset(d.Base, StylesheetPath))),
				g.El("style", g.Raw(AnimationCSS(d.MarqueeSeconds))),
				g.If(d.Runtime, g.Group([]g.Node{
					h.Script(h.Src(site.Asset(d.Base, WasmExecPath))),
					h.Script(h.Src(site.Asset(d.Base, LoaderPath)), g.Attr("data-wasm", site.Asset(d.Base, WasmPath)), h.Defer()),
				})),
			),
			h.Body(
				h.Div(
					h.Class("page"),
					Background(),
					header(p),
					hero(d),
					g.Map(sections, func(s contentSection) g.Node {
						return Section(s.props, s.body(d))
					}),
					footer(d),
				),
			),
		),
	)
}

func Background() g.Node {
	return h.Div(
		g.Attr("aria-hidden", "true"),
		h.Class("background"),
		h.Div(h.Class("background__gradient")),
		h.Div(h.Class("background__glow background__glow--fuchsia animate-pulse-slow")),
		h.Div(h.Class("background__glow background__glow--indigo animate-pulse-slow")),
	)
}

func header(p *profile.Profile) g.Node {
	return h.Header(
		h.Class("site-header"),
		h.Nav(
			h.Class("site-header__nav"),
			h.A(h.Href("#home"), h.Class("site-header__brand"), g.Text(p.Name)),
			h.Div(
				h.Class("site-header__links"),
				g.Map(NavLinks(), func(l NavLink) g.Node {
					return h.A(h.Class("nav-link"), h.Href(l.Href), g.Text(l.Label))
				}),
			),
		),
	)
}

func external(href, class, label string) g.Node {
	return h.A(h.Class(class), h.Href(href), h.Target("_blank"), h.Rel("noreferrer"), g.Text(label))
}

func hero(d PageData) g.Node {
	p := d.Profile
	return h.Main(
		h.ID("home"),
		h.Class("hero"),
		h.Section(
			h.Class("hero__grid"),
			h.Div(
				h.P(h.Class("eyebrow"), g.Text(p.Location)),
				h.H1(h.Class("hero__role"), g.Text(p.Role)),
				h.P(h.Class("hero__tagline"), g.Text(p.Tagline)),
				h.Div(
					h.Class("hero__actions"),
					external(site.Asset(d.Base, p.ResumeURL), "button", "Download Resume"),
				),
				h.Div(
					h.Class("hero__links"),
					external(p.GitHub, "text-link", "GitHub"),
					external(p.LinkedIn, "text-link", "LinkedIn"),
				),
			),
			h.Div(
				h.Class("halo"),
				h.Div(h.Class("halo__ring spin-slow")),
			),
		),
	)
}

func educationBody(d PageData) g.Node {
	return h.Div(
		h.Class("stack"),
		g.Map(d.Profile.Education, func(e profile.Education) g.Node {
			return Card("card--padded entry entry--education",
				h.H3(h.Class("entry__title"), g.Text(e.School)),
				h.P(h.Class("entry__subtitle"), g.Text(e.Degree)),
				h.Span(h.Class("entry__period"), g.Text(e.Period)),
			)
		}),
	)
}

func experienceBody(d PageData) g.Node {
	return h.Div(
		h.Class("stack"),
		g.Map(d.Profile.Experience, func(e profile.Experience) g.Node {
			return Card("card--padded entry entry--experience",
				h.Div(
					h.Class("entry__head"),
					h.Div(
						h.H3(h.Class("entry__title"), g.Text(e.Role)),
						h.P(h.Class("entry__subtitle"), g.Text(e.Company)),
					),
					h.Span(h.Class("entry__period"), g.Text(e.Period)),
				),
				h.Ul(
					h.Class("entry__bullets"),
					g.Map(e.Bullets, func(b string) g.Node { return h.Li(g.Text(b)) }),
				),
			)
		}),
	)
}

func projectsBody(d PageData) g.Node {
	return h.Div(
		h.Class("grid"),
		g.Map(d.Profile.Projects, func(pr profile.Project) g.Node {
			return Card("card--padded entry entry--project",
				h.H3(h.Class("entry__title"), g.Text(pr.Title)),
				h.P(h.Class("entry__blurb"), g.Text(pr.Blurb)),
				h.Div(
					h.Class("tags"),
					g.Map(pr.Tags, func(t string) g.Node { return Tag("", t) }),
				),
			)
		}),
	)
}

func skillsBody(d PageData) g.Node {
	return h.Div(
		h.Class("stack"),
		Marquee(d.Profile.Skills),
		h.Div(
			h.Class("tags skills"),
			g.Map(d.Profile.Skills, func(s string) g.Node { return Tag("", s) }),
		),
	)
}

func contactBody(d PageData) g.Node {
	p := d.Profile
	return Card("card--padded",
		h.Div(
			h.Class("contact"),
			h.Div(
				h.H3(h.Class("entry__title"), g.Text("Open to "+p.Role+" roles")),
				h.P(h.Class("entry__subtitle"), g.Text("I can start immediately and I love building impactful technology.")),
			),
			h.Div(
				h.Class("contact__actions"),
				h.A(h.Class("button"), h.Href(p.Email), g.Text("Email Me")),
				external(p.LinkedIn, "button", "LinkedIn"),
			),
		),
	)
}

func footer(d PageData) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("site-footer__inner"),
			g.Text(fmt.Sprintf("© %d %s. Built with Go + gomponents.", d.Year, d.Profile.Name)),
		),
	)
}

// AnimationCSS is the inline stylesheet for the decorative animations.
func AnimationCSS(marqueeSeconds int) string {
	if marqueeSeconds <= 0 {
		marqueeSeconds = DefaultMarqueeSeconds
	}
	return fmt.Sprintf(`@keyframes marquee { from { transform: translateX(0); } to { transform: translateX(%s); } }
.animate-marquee { animation: marquee %ds linear infinite; }
@keyframes spin-slow { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }
.spin-slow { animation: spin-slow 22s linear infinite; }
@keyframes pulse-slow { 0%%, 100%% { opacity: .6; } 50%% { opacity: 1; } }
.animate-pulse-slow { animation: pulse-slow 8s ease-in-out infinite; }
html { scroll-behavior: smooth; }
`, MarqueeLoopOffset, marqueeSeconds)
}
