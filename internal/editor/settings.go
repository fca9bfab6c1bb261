package editor

// Settings holds the display and editing options an editor reads on
// every operation. One Settings value may be shared by several editor
// instances; it is plain data with no internal locking, so callers
// driving editors from more than one goroutine must serialize access
// themselves.
type Settings struct {
	TabWidth     int
	LineWrapping bool
	LineNumbers  bool
}

// DefaultSettings returns the stock options: tab width 4, wrapping and
// line numbers off.
func DefaultSettings() *Settings {
	return &Settings{TabWidth: 4}
}
