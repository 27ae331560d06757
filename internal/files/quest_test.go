package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadQuest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.txt")
	if err := os.WriteFile(path, []byte("first\n---\n"), filePermissions); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadQuest(path)
	if err != nil {
		t.Fatalf("ReadQuest: %v", err)
	}
	if got != "first\n---\n" {
		t.Fatalf("ReadQuest() = %q, want file contents", got)
	}
}

func TestReadQuestMissing(t *testing.T) {
	_, err := ReadQuest(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrQuestNotFound) {
		t.Fatalf("ReadQuest error = %v, want ErrQuestNotFound", err)
	}
}

func TestWriteOutputCreatesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "quest.html")

	if err := WriteOutput(path, "one"); err != nil {
		t.Fatalf("WriteOutput first: %v", err)
	}
	if err := WriteOutput(path, "two"); err != nil {
		t.Fatalf("WriteOutput second: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "two" {
		t.Fatalf("contents = %q, want %q", contents, "two")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want only the output file", len(entries))
	}
}
