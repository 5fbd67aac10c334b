/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChangesetPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"zesty-otters-dance.md",
		"brave-pandas-smile.md",
		"README.md",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.md"), 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}

	got, err := changesetPaths(dir)
	if err != nil {
		t.Fatalf("changesetPaths() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "brave-pandas-smile.md"),
		filepath.Join(dir, "zesty-otters-dance.md"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("changesetPaths() mismatch (-want +got):\n%s", diff)
	}
}

func TestChangesetPathsMissingDir(t *testing.T) {
	if _, err := changesetPaths(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("changesetPaths() expected error for missing directory")
	}
}
