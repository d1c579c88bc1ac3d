// Conversation sidebar listing

package chatgpt

import (
	"context"
	"fmt"
	"strings"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
)

func conversationsScript(appName string) string {
	return fmt.Sprintf(`tell application "System Events"
	tell process %s
		if not (exists window 1) then return "%s"
		set collected to ""
		repeat with b in (every button of group 1 of group 1 of window 1)
			try
				set label to name of b
				if label is not missing value then set collected to collected & label & linefeed
			end try
		end repeat
		return collected
	end tell
end tell`, automation.QuoteScriptString(appName), noWindowSentinel)
}

// Conversations returns the labels of the conversation entries visible in
// the sidebar, capped at the configured maximum. The labels double as the
// opaque handles accepted by Ask for best-effort conversation selection.
func (c *Client) Conversations(ctx context.Context) ([]string, error) {
	if err := c.EnsureAvailable(ctx); err != nil {
		return nil, err
	}

	out, err := c.runner.Run(ctx, conversationsScript(c.cfg.AppName))
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	if strings.TrimSpace(out) == noWindowSentinel {
		return nil, &ScrapeError{Reason: "window not found"}
	}

	var handles []string
	for _, line := range strings.Split(out, "\n") {
		label := strings.TrimSpace(line)
		if label == "" || excludedTexts[label] {
			continue
		}
		handles = append(handles, label)
		if len(handles) >= c.cfg.MaxConversations {
			break
		}
	}
	return handles, nil
}
