//go:build js && wasm

package wasm

import (
	"encoding/json"
	"syscall/js"
)

// consoleWriter forwards JSON log lines to the browser console, using
// console.warn/console.error for the matching levels.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return len(p), nil
	}
	var head struct {
		Level string `json:"level"`
	}
	_ = json.Unmarshal(p, &head)

	method := "log"
	switch head.Level {
	case "WARN":
		method = "warn"
	case "ERROR":
		method = "error"
	case "DEBUG":
		method = "debug"
	}
	line := string(p)
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	console.Call(method, line)
	return len(p), nil
}
