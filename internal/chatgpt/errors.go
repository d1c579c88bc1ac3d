// Error types for the extraction engine

package chatgpt

import "fmt"

// UnavailableError indicates the target application is not running and could
// not be launched or confirmed. Not retried internally.
type UnavailableError struct {
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("application unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("application unavailable: %s", e.Reason)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ScrapeError indicates the target window did not exist at scrape time.
// Callers treat this as a degraded-but-valid outcome, not a hard failure.
type ScrapeError struct {
	Reason string
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape failed: %s", e.Reason)
}

// InjectionError indicates an automation step failed while submitting a
// prompt. Step names the stage: activate, clipboard, paste, or type.
type InjectionError struct {
	Step string
	Err  error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("prompt injection failed at %s: %v", e.Step, e.Err)
}

func (e *InjectionError) Unwrap() error { return e.Err }
