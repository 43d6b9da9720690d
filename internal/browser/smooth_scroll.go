package browser

import "strings"

const fragmentAnchor = `a[href^="#"]`

// SmoothScroll turns clicks on in-page anchors into smooth scrolls.
// It is not safe for concurrent use; the browser event loop is single threaded.
type SmoothScroll struct {
	sub Subscription
	doc Document
}

// Attach registers the click listener on doc. Attaching while attached is a no-op.
func (s *SmoothScroll) Attach(doc Document) {
	if s.sub != nil {
		return
	}
	s.doc = doc
	s.sub = doc.AddEventListener("click", s.onClick)
}

// Detach removes the listener. Detaching while detached is a no-op.
func (s *SmoothScroll) Detach() {
	if s.sub == nil {
		return
	}
	s.sub.Release()
	s.sub = nil
	s.doc = nil
}

func (s *SmoothScroll) Attached() bool {
	return s.sub != nil
}

func (s *SmoothScroll) onClick(e Event) {
	if s.doc == nil {
		return
	}
	target := e.Target()
	if target == nil {
		return
	}
	anchor, ok := target.Closest(fragmentAnchor)
	if !ok {
		return
	}
	href, _ := anchor.Attribute("href")
	id := strings.TrimPrefix(href, "#")
	if id == "" {
		return
	}
	el, ok := s.doc.ElementByID(id)
	if !ok {
		return
	}
	e.PreventDefault()
	el.ScrollIntoView(ScrollOptions{Behavior: ScrollSmooth, Block: "start"})
}
