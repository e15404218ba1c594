package assist

import "github.com/atotto/clipboard"

// Clipboard receives plain text copied out of a suggestion buffer.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the clipboard of the host running the process.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// NopClipboard discards writes; callers return the text to the client instead.
type NopClipboard struct{}

func (NopClipboard) WriteText(string) error { return nil }
