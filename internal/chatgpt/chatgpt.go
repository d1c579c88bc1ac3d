// Package chatgpt drives the ChatGPT desktop application through the macOS
// accessibility layer and reconstructs its replies from the unordered text
// nodes the layer exposes.
//
// The pipeline for a single ask is: availability guard, prompt injection,
// fixed wait budget, accessibility scrape, spatial ordering, prompt-boundary
// location, and response cleaning. There is no internal parallelism and no
// locking: the target application has a single foreground window and the
// system clipboard is shared state, so overlapping invocations must be
// serialized by the caller.
package chatgpt

import (
	"context"
	"log"
	"time"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/automation"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/config"
)

// Client is the response-extraction engine. It is not safe for concurrent
// use; callers must serialize invocations.
type Client struct {
	cfg       *config.Config
	runner    automation.ScriptRunner
	clipboard automation.Clipboard

	// sleep is the blocking-wait hook, replaceable in tests so suites never
	// spend real wall-clock time.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an engine over the given automation substrate.
func New(cfg *config.Config, runner automation.ScriptRunner, clipboard automation.Clipboard) *Client {
	return &Client{
		cfg:       cfg,
		runner:    runner,
		clipboard: clipboard,
		sleep:     sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) debugf(format string, args ...any) {
	if c.cfg.Debug {
		log.Printf(format, args...)
	}
}

// ClampWait restricts a requested wait budget to the configured closed range.
func ClampWait(cfg *config.Config, seconds int) int {
	if seconds < cfg.MinWait {
		return cfg.MinWait
	}
	if seconds > cfg.MaxWait {
		return cfg.MaxWait
	}
	return seconds
}

// Ask submits prompt to the target application and extracts its reply.
//
// conversationHandle optionally selects a prior conversation first, best
// effort. waitSeconds is the pause between submitting and scraping, clamped
// to the configured range. The returned text has chrome tokens stripped; an
// empty string means the transcript held no qualifying nodes after the
// boundary, which is a valid outcome. A missing window at scrape time
// surfaces as *ScrapeError so the caller can degrade rather than fail.
func (c *Client) Ask(ctx context.Context, prompt, conversationHandle string, waitSeconds int) (string, error) {
	if err := c.EnsureAvailable(ctx); err != nil {
		return "", err
	}
	if err := c.Inject(ctx, prompt, conversationHandle); err != nil {
		return "", err
	}

	wait := ClampWait(c.cfg, waitSeconds)
	c.debugf("waiting %ds for response", wait)
	if err := c.sleep(ctx, time.Duration(wait)*time.Second); err != nil {
		return "", err
	}

	nodes, err := c.Scrape(ctx)
	if err != nil {
		return "", err
	}

	transcript := OrderNodes(nodes)
	segment := LocateReply(transcript, prompt, c.cfg.TailFallback)
	c.debugf("boundary tier %d, %d reply nodes", segment.Tier, len(segment.Nodes))

	cleaned := CleanResponse(segment.Text())
	c.warnIfIncomplete(cleaned)
	return cleaned, nil
}

// LastMessage extracts the most recent reply currently on screen without
// sending a new prompt.
func (c *Client) LastMessage(ctx context.Context) (string, error) {
	if err := c.EnsureAvailable(ctx); err != nil {
		return "", err
	}

	nodes, err := c.Scrape(ctx)
	if err != nil {
		return "", err
	}

	transcript := OrderNodes(nodes)
	segment := LastMessageSegment(transcript)

	cleaned := CleanResponse(segment.Text())
	c.warnIfIncomplete(cleaned)
	return cleaned, nil
}

// warnIfIncomplete logs when extracted text looks truncated. Warning only:
// the heuristic must never gate the result.
func (c *Client) warnIfIncomplete(cleaned string) {
	if cleaned == "" {
		return
	}
	if ok, signal := LikelyComplete(cleaned, c.cfg.CompletenessMinLen); !ok {
		log.Printf("warning: extracted response may be truncated (%d bytes)", len(cleaned))
	} else {
		c.debugf("response looks complete (%s)", signal)
	}
}
