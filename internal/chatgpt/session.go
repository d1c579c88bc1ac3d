// Session availability guard

package chatgpt

import (
	"context"
	"fmt"
	"strings"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
)

// EnsureAvailable verifies the target application is running, launching it
// and waiting a settle delay when it is not. It must run before any scrape or
// injection. Idempotent: while the application is already running the cost is
// a single process-existence query.
func (c *Client) EnsureAvailable(ctx context.Context) error {
	running, err := c.isRunning(ctx)
	if err != nil {
		return &UnavailableError{Reason: "process check failed", Err: err}
	}
	if running {
		return nil
	}

	c.debugf("%s is not running; launching", c.cfg.AppName)
	if _, err := c.runner.Run(ctx, c.activateScript()); err != nil {
		return &UnavailableError{Reason: "launch failed", Err: err}
	}
	if err := c.sleep(ctx, c.cfg.LaunchSettleDelay); err != nil {
		return err
	}

	running, err = c.isRunning(ctx)
	if err != nil {
		return &UnavailableError{Reason: "process check failed after launch", Err: err}
	}
	if !running {
		return &UnavailableError{Reason: fmt.Sprintf("%s did not start within the settle delay", c.cfg.AppName)}
	}
	return nil
}

func (c *Client) isRunning(ctx context.Context) (bool, error) {
	script := fmt.Sprintf(`tell application "System Events" to (name of processes) contains %s`,
		automation.QuoteScriptString(c.cfg.AppName))
	out, err := c.runner.Run(ctx, script)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}
