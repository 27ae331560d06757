package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/questlog/internal/files"
	"github.com/faizmokh/questlog/internal/page"
	"github.com/faizmokh/questlog/internal/quest"
	"github.com/faizmokh/questlog/internal/version"
)

const sampleQuest = `first
[event] second
 ---
  third
[event,boss] third
`

func TestRootGeneratesHTML(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", sampleQuest)

	stdout, stderr, err := runRoot(t, context.Background(), "--quest", path)
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr)
	}
	assertContains(t, stdout, `<div class="stage future">`)
	assertContains(t, stdout, "YOU ARE HERE")
	assertContains(t, stdout, `<span class="quest-action quest-important">third</span>`)
	assertNotContains(t, stdout, "questlog")
	assertContains(t, stderr, "generated")
	assertContains(t, stderr, "done")
}

func TestRootWithTemplate(t *testing.T) {
	isolateConfig(t)
	questPath := writeFile(t, "quest.txt", "[boss] win\n")
	tplPath := writeFile(t, "page.hbs", "<html><body>{{content}}</body></html>")

	stdout, stderr, err := runRoot(t, context.Background(), "--quest", questPath, "--template-file", tplPath)
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr)
	}
	assertContains(t, stdout, `<html><body><div class="stage">`)
	assertContains(t, stdout, "</div></body></html>")
}

func TestRootMissingTemplateIsDistinctFromParseError(t *testing.T) {
	isolateConfig(t)
	questPath := writeFile(t, "quest.txt", "ok\n")

	_, _, err := runRoot(t, context.Background(), "--quest", questPath, "--template-file", filepath.Join(t.TempDir(), "nope.hbs"))
	if !errors.Is(err, page.ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
	if errors.Is(err, quest.ErrGrammarMismatch) {
		t.Fatalf("template failure reported as parse error: %v", err)
	}
}

func TestRootParseFailureProducesNoOutput(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", "first\n[event second\n")

	stdout, stderr, err := runRoot(t, context.Background(), "--quest", path)
	if !errors.Is(err, quest.ErrGrammarMismatch) {
		t.Fatalf("error = %v, want ErrGrammarMismatch", err)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty on failure", stdout)
	}
	assertContains(t, stderr, "failed")
}

func TestRootRequiresQuest(t *testing.T) {
	isolateConfig(t)
	if _, _, err := runRoot(t, context.Background()); err == nil {
		t.Fatalf("Execute without --quest returned nil error")
	}
}

func TestRootMissingQuestFile(t *testing.T) {
	isolateConfig(t)
	_, _, err := runRoot(t, context.Background(), "--quest", filepath.Join(t.TempDir(), "none.txt"))
	if !errors.Is(err, files.ErrQuestNotFound) {
		t.Fatalf("error = %v, want ErrQuestNotFound", err)
	}
}

func TestRootEscapeFromConfigAndFlag(t *testing.T) {
	isolateConfig(t)
	questPath := writeFile(t, "quest.txt", "fight <b>troll</b>\n")
	cfgPath := writeFile(t, "config.toml", "[render]\nescape = true\n")

	stdout, _, err := runRoot(t, context.Background(), "--config", cfgPath, "--quest", questPath)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	assertContains(t, stdout, "fight &lt;b&gt;troll&lt;/b&gt;")

	stdout, _, err = runRoot(t, context.Background(), "--config", cfgPath, "--quest", questPath, "--escape=false")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	assertContains(t, stdout, "fight <b>troll</b>")
}

func TestRootLogLevelFlag(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", "a\n")

	_, stderr, err := runRoot(t, context.Background(), "--log-level", "error", "--quest", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stderr != "" {
		t.Fatalf("stderr = %q, want nothing at error level", stderr)
	}

	if _, _, err := runRoot(t, context.Background(), "--log-level", "shouting", "--quest", path); err == nil {
		t.Fatalf("Execute with invalid log level returned nil error")
	}
}

func TestRootVersion(t *testing.T) {
	isolateConfig(t)
	stdout, _, err := runRoot(t, context.Background(), "--version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	assertContains(t, stdout, version.Info())
}

func TestParseCommandJSON(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", sampleQuest)

	stdout, _, err := runRoot(t, context.Background(), "parse", "--quest", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var view documentView
	if err := json.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, stdout)
	}
	if len(view.Lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(view.Lines))
	}
	if view.Lines[2].Kind != "marker" {
		t.Fatalf("Lines[2].Kind = %q, want marker", view.Lines[2].Kind)
	}
	last := view.Lines[4]
	if last.Action != "third" || strings.Join(last.Tags, ",") != "event,boss" {
		t.Fatalf("Lines[4] = %#v", last)
	}
}

func TestParseCommandYAML(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", "[unknown,boss] Foo bar\n")

	stdout, _, err := runRoot(t, context.Background(), "parse", "--quest", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var view documentView
	if err := yaml.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, stdout)
	}
	if len(view.Lines) != 1 || strings.Join(view.Lines[0].Tags, ",") != "unknown,boss" {
		t.Fatalf("view = %#v", view)
	}
}

func TestParseCommandRejectsFormat(t *testing.T) {
	isolateConfig(t)
	path := writeFile(t, "quest.txt", "a\n")
	if _, _, err := runRoot(t, context.Background(), "parse", "--quest", path, "--format", "xml"); err == nil {
		t.Fatalf("Execute with --format xml returned nil error")
	}
}

func TestWatchCommandWritesOutput(t *testing.T) {
	isolateConfig(t)
	questPath := writeFile(t, "quest.txt", "first\n")
	outPath := filepath.Join(t.TempDir(), "out", "quest.html")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := runRoot(t, ctx, "watch", "--quest", questPath, "--out", outPath, "--debounce", "20ms")
		done <- err
	}()

	waitForFile(t, outPath, "first")
	if err := os.WriteFile(questPath, []byte("first\n---\nsecond\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	waitForFile(t, outPath, "YOU ARE HERE")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

func runRoot(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(ctx)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(files.ConfigEnv, "")
	t.Setenv("QUESTLOG_LOG_LEVEL", "")
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func waitForFile(t *testing.T, path, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("%s never contained %q", path, want)
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}
