//go:build js

package systems

import (
	"errors"
	"syscall/js"
)

var errNoClipboard = errors.New("clipboard API unavailable")

// writeClipboard is swapped out in tests.
var writeClipboard = writeBrowserClipboard

// writeBrowserClipboard hands text to navigator.clipboard.writeText. The
// returned promise is not awaited; a rejection only shows in the console.
func writeBrowserClipboard(text string) error {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.IsNull() {
		return errNoClipboard
	}
	cb := nav.Get("clipboard")
	if cb.IsUndefined() || cb.IsNull() {
		return errNoClipboard
	}
	cb.Call("writeText", text)
	return nil
}
