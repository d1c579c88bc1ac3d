// Package automation abstracts the macOS UI-automation substrate: script
// execution against the accessibility layer and the system clipboard.
//
// The interfaces exist so the extraction engine can be tested against fakes
// without touching the real window server or clobbering the user's clipboard.
package automation

import "context"

// ScriptRunner executes an AppleScript source and returns its textual result.
type ScriptRunner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Clipboard writes text to the system clipboard. Writes are destructive to
// prior clipboard contents; callers take the paste path knowingly.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}
