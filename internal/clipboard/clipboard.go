// Package clipboard moves selection text in and out of the system
// clipboard. When no system clipboard is reachable (headless session,
// remote terminal without X) an in-process copy buffer keeps
// copy/paste working inside the editor, mirroring how GL editors fall
// back to a shared copy buffer without a window system.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

var fallback string

// Write stores text in the system clipboard and the fallback buffer.
// It reports whether any system-level target accepted the text.
func Write(text string) bool {
	fallback = text
	ok := clipboard.WriteAll(text) == nil
	if writeOSC52(text) {
		ok = true
	}
	return ok
}

// Read returns the system clipboard content, or the fallback buffer
// when the system clipboard is empty or unavailable.
func Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	return fallback
}

// writeOSC52 pushes text to the hosting terminal's clipboard via the
// OSC 52 escape, which works across SSH where atotto cannot.
func writeOSC52(text string) bool {
	if text == "" {
		return false
	}
	if fi, err := os.Stdout.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
