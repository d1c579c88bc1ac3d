// Prompt injection via synthetic input

package chatgpt

import (
	"context"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
)

// pasteTriggerScripts are the writing systems whose characters cannot be
// reliably produced as synthetic keystrokes; their presence switches prompt
// entry to the clipboard-paste path.
var pasteTriggerScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Arabic,
	unicode.Hebrew,
	unicode.Cyrillic,
	unicode.Thai,
	unicode.Devanagari,
}

// NeedsPaste reports whether the prompt must be entered via clipboard paste
// rather than direct keystrokes. ASCII and accented Latin type fine; the
// named non-Latin scripts and supplementary-plane glyphs (emoji) do not.
func NeedsPaste(prompt string) bool {
	for _, r := range prompt {
		if r < utf8.RuneSelf {
			continue
		}
		if unicode.In(r, pasteTriggerScripts...) {
			return true
		}
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

// Inject posts a prompt into the target application: activate the window,
// best-effort select the requested conversation, clear the text field, enter
// the prompt by keystroke or clipboard paste, and submit with Return.
//
// The paste path overwrites the system clipboard; that side effect is part of
// the contract, not incidental. A failed conversation selection is logged and
// swallowed so a stale or renamed handle never aborts the ask.
func (c *Client) Inject(ctx context.Context, prompt, conversationHandle string) error {
	if _, err := c.runner.Run(ctx, c.activateScript()); err != nil {
		return &InjectionError{Step: "activate", Err: err}
	}
	if err := c.sleep(ctx, c.cfg.StepDelay); err != nil {
		return err
	}

	if conversationHandle != "" {
		if _, err := c.runner.Run(ctx, c.selectConversationScript(conversationHandle)); err != nil {
			c.debugf("conversation select %q failed (continuing): %v", conversationHandle, err)
		} else if err := c.sleep(ctx, c.cfg.StepDelay); err != nil {
			return err
		}
	}

	if NeedsPaste(prompt) {
		c.debugf("prompt contains non-typeable characters; using clipboard paste")
		if err := c.clipboard.SetText(ctx, prompt); err != nil {
			return &InjectionError{Step: "clipboard", Err: err}
		}
		if _, err := c.runner.Run(ctx, c.entryScript(`keystroke "v" using command down`)); err != nil {
			return &InjectionError{Step: "paste", Err: err}
		}
		return nil
	}

	entry := "keystroke " + automation.QuoteScriptString(prompt)
	if _, err := c.runner.Run(ctx, c.entryScript(entry)); err != nil {
		return &InjectionError{Step: "type", Err: err}
	}
	return nil
}

func (c *Client) activateScript() string {
	return fmt.Sprintf(`tell application %s to activate`, automation.QuoteScriptString(c.cfg.AppName))
}

// selectConversationScript clicks the sidebar entry whose label matches the
// handle. The handle is an opaque best-effort hint; the script fails cleanly
// when no such button exists.
func (c *Client) selectConversationScript(handle string) string {
	return fmt.Sprintf(`tell application "System Events"
	tell process %s
		click button %s of group 1 of group 1 of window 1
	end tell
end tell`, automation.QuoteScriptString(c.cfg.AppName), automation.QuoteScriptString(handle))
}

// entryScript focuses the window, clears any residual editor content with
// select-all + delete, performs the given entry action, and submits with the
// Return key (key code 36).
func (c *Client) entryScript(entryAction string) string {
	delay := strconv.FormatFloat(c.cfg.StepDelay.Seconds(), 'f', -1, 64)
	return fmt.Sprintf(`tell application "System Events"
	tell process %s
		set frontmost to true
		delay %s
		keystroke "a" using command down
		key code 51
		delay %s
		%s
		delay %s
		key code 36
	end tell
end tell`, automation.QuoteScriptString(c.cfg.AppName), delay, delay, entryAction, delay)
}
