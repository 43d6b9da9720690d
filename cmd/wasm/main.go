//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/3zk9/portfolio/adapters/dom"
	"github.com/3zk9/portfolio/internal/browser"
)

func main() {
	theme := browser.DefaultTheme
	if t := js.Global().Get("document").Get("documentElement").Call("getAttribute", "data-theme"); t.Type() == js.TypeString && t.String() != "" {
		theme = t.String()
	}

	page := browser.NewPage(theme)
	page.Mount(dom.Current())

	done := make(chan struct{})
	onHide := js.FuncOf(func(this js.Value, args []js.Value) any {
		if !page.Mounted() || (len(args) > 0 && args[0].Get("persisted").Truthy()) {
			return nil
		}
		page.Unmount()
		close(done)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", onHide)

	<-done
	js.Global().Call("removeEventListener", "pagehide", onHide)
	onHide.Release()
}
