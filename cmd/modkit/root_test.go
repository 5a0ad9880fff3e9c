package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jamesainslie/modkit/pkg/modkit/journal"
)

func TestCommandRegistration(t *testing.T) {
	expected := []string{
		"open", "project", "cat", "write", "ls", "mkdir", "rmdir",
		"new", "recent", "journal", "watch", "info", "config", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestProjectSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range projectCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"read", "write"} {
		if !names[name] {
			t.Errorf("project subcommand %q is not registered", name)
		}
	}
}

func TestResolvePath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() failed: %v", err)
	}

	got, err := resolvePath("~/mods")
	if err != nil {
		t.Fatalf("resolvePath(~/mods) failed: %v", err)
	}
	want := filepath.Join(homeDir, "mods")
	if got != want {
		t.Errorf("resolvePath(~/mods) = %q, want %q", got, want)
	}

	got, err = resolvePath("relative/dir")
	if err != nil {
		t.Fatalf("resolvePath(relative/dir) failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolvePath(relative/dir) = %q, want absolute path", got)
	}
}

func TestDescribeEntry(t *testing.T) {
	write := journal.Entry{
		Operation:      journal.OpProjectWrite,
		Path:           "/mods/level.r5v",
		OriginalSize:   2048,
		CompressedSize: 512,
		Timestamp:      time.Now(),
	}
	desc := describeEntry(write)
	if !strings.Contains(desc, "/mods/level.r5v") {
		t.Errorf("describeEntry(write) = %q, want path included", desc)
	}

	scaffold := journal.Entry{
		Operation: journal.OpScaffold,
		Path:      "/mods/huge-scatter",
		ModID:     "huge-scatter",
	}
	desc = describeEntry(scaffold)
	if !strings.Contains(desc, "mod huge-scatter") {
		t.Errorf("describeEntry(scaffold) = %q, want mod id included", desc)
	}
}
