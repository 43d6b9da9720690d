package browser

const DefaultTheme = "dark"

// Page is the mounted lifetime of the portfolio page.
type Page struct {
	Theme string

	scroll  SmoothScroll
	mounted bool
}

func NewPage(theme string) *Page {
	if theme == "" {
		theme = DefaultTheme
	}
	return &Page{Theme: theme}
}

// Mount sets the theme class on the document root and starts intercepting
// anchor clicks. Mounting an already mounted page does nothing.
func (p *Page) Mount(doc Document) {
	if p.mounted {
		return
	}
	doc.Root().AddClass(p.Theme)
	p.scroll.Attach(doc)
	p.mounted = true
}

// Unmount releases the click listener. The theme class stays on the document.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.scroll.Detach()
	p.mounted = false
}

func (p *Page) Mounted() bool {
	return p.mounted
}
