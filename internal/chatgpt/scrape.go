// Accessibility scraping of the target window

package chatgpt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
)

// noWindowSentinel is emitted by the scrape script when the target window
// does not exist. Chosen to never collide with on-screen text.
const noWindowSentinel = "@@NO_WINDOW@@"

// excludedTexts are placeholder strings the application shows in an empty
// editor or sidebar; they carry no conversational content.
var excludedTexts = map[string]bool{
	"New chat":        true,
	"Ask anything":    true,
	"Message ChatGPT": true,
}

// scrapeScript walks every descendant of the foreground window and emits one
// line per readable static-text element: the element's vertical position, a
// tab, then its text. Per-element failures are swallowed by the try block so
// a single unreadable element cannot poison the batch.
func scrapeScript(appName string) string {
	return fmt.Sprintf(`tell application "System Events"
	tell process %s
		if not (exists window 1) then return "%s"
		set collected to ""
		set allElements to entire contents of window 1
		repeat with el in allElements
			try
				if class of el is static text then
					set elText to value of el
					if elText is missing value then set elText to description of el
					if elText is not missing value then
						set elPos to position of el
						set collected to collected & (item 2 of elPos) & tab & elText & linefeed
					end if
				end if
			end try
		end repeat
		return collected
	end tell
end tell`, automation.QuoteScriptString(appName), noWindowSentinel)
}

// Scrape enumerates the visible static-text nodes of the target window.
//
// Nodes are returned in accessibility traversal order, which is arbitrary;
// callers must pass them through OrderNodes before reasoning about reading
// order. Returns *ScrapeError when the window does not exist.
func (c *Client) Scrape(ctx context.Context) ([]ScreenTextNode, error) {
	out, err := c.runner.Run(ctx, scrapeScript(c.cfg.AppName))
	if err != nil {
		return nil, fmt.Errorf("failed to read window contents: %w", err)
	}
	if strings.TrimSpace(out) == noWindowSentinel {
		return nil, &ScrapeError{Reason: "window not found"}
	}

	nodes := parseScrapeOutput(out, c.cfg.MinNodeTextLen)
	c.debugf("scraped %d qualifying text nodes", len(nodes))
	return nodes, nil
}

// parseScrapeOutput converts the script's "y<TAB>text" lines into nodes.
//
// Lines without a parsable position prefix are continuations of a preceding
// multi-line element and are folded into it. Nodes whose text is empty, at or
// below the length floor, or on the placeholder exclusion list are dropped
// after assembly.
func parseScrapeOutput(out string, minTextLen int) []ScreenTextNode {
	var raw []ScreenTextNode
	for _, line := range strings.Split(out, "\n") {
		y, text, ok := splitScrapeLine(line)
		if !ok {
			if len(raw) > 0 && strings.TrimSpace(line) != "" {
				raw[len(raw)-1].Text += "\n" + line
			}
			continue
		}
		raw = append(raw, ScreenTextNode{Text: text, Y: y})
	}

	nodes := make([]ScreenTextNode, 0, len(raw))
	for _, n := range raw {
		n.Text = strings.TrimSpace(n.Text)
		if n.Text == "" || utf8.RuneCountInString(n.Text) <= minTextLen {
			continue
		}
		if excludedTexts[n.Text] {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func splitScrapeLine(line string) (float64, string, bool) {
	pos, text, found := strings.Cut(line, "\t")
	if !found {
		return 0, "", false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return 0, "", false
	}
	return y, text, true
}
