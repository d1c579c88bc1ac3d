// osascript-backed implementations of the automation interfaces

package automation

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Osascript runs AppleScript sources through /usr/bin/osascript.
type Osascript struct{}

// Run executes the script and returns its result with the trailing newline
// stripped. osascript's stderr is folded into the returned error so callers
// see the AppleScript failure reason.
func (o *Osascript) Run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("osascript: %w", err)
		}
		return "", fmt.Errorf("osascript: %s: %w", msg, err)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// ScriptClipboard writes to the system clipboard by way of AppleScript's
// "set the clipboard to" through a ScriptRunner, keeping the clipboard a
// substitutable resource rather than an ambient global.
type ScriptClipboard struct {
	Runner ScriptRunner
}

// SetText replaces the clipboard contents with text.
func (c *ScriptClipboard) SetText(ctx context.Context, text string) error {
	script := fmt.Sprintf(`set the clipboard to %s`, QuoteScriptString(text))
	if _, err := c.Runner.Run(ctx, script); err != nil {
		return fmt.Errorf("failed to set clipboard: %w", err)
	}
	return nil
}

var (
	_ ScriptRunner = (*Osascript)(nil)
	_ Clipboard    = (*ScriptClipboard)(nil)
)
