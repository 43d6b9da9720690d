// Package browser holds the page behaviour that runs in the browser: the theme
// flag set on mount and the smooth-scroll handling of in-page anchor clicks.
// It talks to the document only through the ports below, so it runs the same
// against the syscall/js adapter and the in-memory DOM used by tests.
package browser

type ScrollBehavior string

const (
	ScrollSmooth ScrollBehavior = "smooth"
	ScrollAuto   ScrollBehavior = "auto"
)

type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    string
}

type Element interface {
	// Closest returns the element itself or its nearest ancestor matching selector.
	Closest(selector string) (Element, bool)
	Attribute(name string) (string, bool)
	ScrollIntoView(opts ScrollOptions)
	AddClass(name string)
}

type Event interface {
	// Target is nil when the event did not originate from an element.
	Target() Element
	PreventDefault()
}

// Subscription is a registered listener. Release removes it; calling it again does nothing.
type Subscription interface {
	Release()
}

type Document interface {
	AddEventListener(eventType string, fn func(Event)) Subscription
	ElementByID(id string) (Element, bool)
	// Root is the document element (<html>).
	Root() Element
}
