// Package browsertest is an in-memory DOM for exercising package browser.
package browsertest

import (
	"regexp"
	"slices"
	"strings"

	"github.com/3zk9/portfolio/internal/browser"
)

type Document struct {
	root *Element
	body *Element
	subs []*subscription
}

type subscription struct {
	eventType string
	fn        func(browser.Event)
	active    bool
}

func (s *subscription) Release() {
	s.active = false
}

func NewDocument() *Document {
	d := &Document{}
	d.root = &Element{Tag: "html", attrs: map[string]string{}}
	d.body = d.root.Append("body", nil)
	return d
}

func (d *Document) Body() *Element { return d.body }

func (d *Document) Root() browser.Element { return d.root }

func (d *Document) RootElement() *Element { return d.root }

func (d *Document) AddEventListener(eventType string, fn func(browser.Event)) browser.Subscription {
	s := &subscription{eventType: eventType, fn: fn, active: true}
	d.subs = append(d.subs, s)
	return s
}

func (d *Document) ElementByID(id string) (browser.Element, bool) {
	if el := d.root.find(id); el != nil {
		return el, true
	}
	return nil, false
}

// ActiveListeners counts registered, unreleased listeners for eventType.
func (d *Document) ActiveListeners(eventType string) int {
	n := 0
	for _, s := range d.subs {
		if s.active && s.eventType == eventType {
			n++
		}
	}
	return n
}

// Click dispatches a click originating at target (nil for a non-element origin).
func (d *Document) Click(target *Element) *Event {
	e := &Event{target: target}
	for _, s := range slices.Clone(d.subs) {
		if s.active && s.eventType == "click" {
			s.fn(e)
		}
	}
	return e
}

// Scrolls is every ScrollIntoView call made on any element, in order.
func (d *Document) Scrolls() []Scroll {
	var out []Scroll
	d.root.walk(func(el *Element) {
		for _, o := range el.scrolls {
			out = append(out, Scroll{Element: el, Options: o})
		}
	})
	return out
}

type Scroll struct {
	Element *Element
	Options browser.ScrollOptions
}

type Event struct {
	target    *Element
	Prevented bool
}

func (e *Event) Target() browser.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) PreventDefault() { e.Prevented = true }

type Element struct {
	Tag      string
	attrs    map[string]string
	classes  []string
	parent   *Element
	children []*Element
	scrolls  []browser.ScrollOptions
}

// Append adds a child element with the given attributes and returns it.
func (e *Element) Append(tag string, attrs map[string]string) *Element {
	child := &Element{Tag: tag, parent: e, attrs: map[string]string{}}
	for k, v := range attrs {
		child.attrs[k] = v
	}
	e.children = append(e.children, child)
	return child
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) AddClass(name string) {
	if !slices.Contains(e.classes, name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) ScrollIntoView(opts browser.ScrollOptions) {
	e.scrolls = append(e.scrolls, opts)
}

var selectorRe = regexp.MustCompile(`^([a-z0-9]*)(?:\[([a-z-]+)\^="([^"]*)"\])?$`)

// Closest understands "tag", `[attr^="prefix"]` and the combination of both.
func (e *Element) Closest(selector string) (browser.Element, bool) {
	m := selectorRe.FindStringSubmatch(selector)
	if m == nil {
		return nil, false
	}
	tag, name, prefix := m[1], m[2], m[3]
	for el := e; el != nil; el = el.parent {
		if tag != "" && el.Tag != tag {
			continue
		}
		if name != "" {
			v, ok := el.attrs[name]
			if !ok || !strings.HasPrefix(v, prefix) {
				continue
			}
		}
		return el, true
	}
	return nil, false
}

func (e *Element) find(id string) *Element {
	var found *Element
	e.walk(func(el *Element) {
		if found == nil && el.attrs["id"] == id {
			found = el
		}
	})
	return found
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}
