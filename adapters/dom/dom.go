//go:build js && wasm

// Package dom implements the browser ports over syscall/js.
package dom

import (
	"syscall/js"

	"github.com/3zk9/portfolio/internal/browser"
)

type document struct {
	v js.Value
}

// Current wraps the global document.
func Current() browser.Document {
	return &document{v: js.Global().Get("document")}
}

func (d *document) AddEventListener(eventType string, fn func(browser.Event)) browser.Subscription {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(event{v: args[0]})
		}
		return nil
	})
	d.v.Call("addEventListener", eventType, cb)
	return &subscription{target: d.v, eventType: eventType, cb: cb}
}

func (d *document) ElementByID(id string) (browser.Element, bool) {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return element{v: el}, true
}

func (d *document) Root() browser.Element {
	return element{v: d.v.Get("documentElement")}
}

type subscription struct {
	target    js.Value
	eventType string
	cb        js.Func
	released  bool
}

func (s *subscription) Release() {
	if s.released {
		return
	}
	s.target.Call("removeEventListener", s.eventType, s.cb)
	s.cb.Release()
	s.released = true
}

type event struct {
	v js.Value
}

func (e event) Target() browser.Element {
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() || t.Get("closest").Type() != js.TypeFunction {
		return nil
	}
	return element{v: t}
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

type element struct {
	v js.Value
}

func (el element) Closest(selector string) (browser.Element, bool) {
	found := el.v.Call("closest", selector)
	if found.IsNull() || found.IsUndefined() {
		return nil, false
	}
	return element{v: found}, true
}

func (el element) Attribute(name string) (string, bool) {
	v := el.v.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (el element) ScrollIntoView(opts browser.ScrollOptions) {
	el.v.Call("scrollIntoView", map[string]any{
		"behavior": string(opts.Behavior),
		"block":    opts.Block,
	})
}

func (el element) AddClass(name string) {
	el.v.Get("classList").Call("add", name)
}
