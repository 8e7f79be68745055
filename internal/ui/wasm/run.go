//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/landing/internal/ui/app"
	"github.com/Its-donkey/landing/logging"
)

// LogLevelAttr is read from the <html> element to pick the browser log level.
const LogLevelAttr = "data-log-level"

// Run wires the page once the DOM is ready and blocks forever so callbacks stay alive.
func Run() {
	global := js.Global()
	doc := global.Get("document")

	level := logging.INFO
	if root := doc.Get("documentElement"); root.Truthy() {
		if attr := root.Call("getAttribute", LogLevelAttr); attr.Type() == js.TypeString {
			level = logging.ParseLevel(attr.String())
		}
	}
	logger := logging.New("browser", level, consoleWriter{})

	start := func() {
		a, err := app.Start(window{v: global}, document{v: doc}, logger)
		if err != nil {
			logger.Error("app", "Interaction layer failed to start", err, nil)
			return
		}
		// The bundle can finish loading after the window load event has already fired.
		if doc.Get("readyState").String() == "complete" {
			a.Loaded()
		}
	}

	if doc.Get("readyState").String() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(this js.Value, args []js.Value) any {
			ready.Release()
			start()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		start()
	}

	select {}
}
