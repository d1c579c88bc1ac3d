// Clipboard unit tests against a fake runner

package automation

import (
	"context"
	"fmt"
	"testing"
)

type recordingRunner struct {
	scripts []string
	result  string
	err     error
}

func (r *recordingRunner) Run(_ context.Context, script string) (string, error) {
	r.scripts = append(r.scripts, script)
	return r.result, r.err
}

func TestScriptClipboard_SetText(t *testing.T) {
	runner := &recordingRunner{}
	cb := &ScriptClipboard{Runner: runner}

	if err := cb.SetText(context.Background(), `hello "world"`); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}

	if len(runner.scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(runner.scripts))
	}
	want := `set the clipboard to "hello \"world\""`
	if runner.scripts[0] != want {
		t.Errorf("script = %q, want %q", runner.scripts[0], want)
	}
}

func TestScriptClipboard_SetText_RunnerError(t *testing.T) {
	runner := &recordingRunner{err: fmt.Errorf("execution error")}
	cb := &ScriptClipboard{Runner: runner}

	if err := cb.SetText(context.Background(), "text"); err == nil {
		t.Error("SetText() succeeded, want error")
	}
}
