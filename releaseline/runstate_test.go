/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package releaseline

import "testing"

func TestCredits(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{
			name:    "no authors",
			authors: nil,
			want:    "",
		},
		{
			name:    "one author",
			authors: []string{"alice"},
			want:    "\n\n### Credits\n\nHuge thanks to @alice for helping!",
		},
		{
			name:    "two authors",
			authors: []string{"bob", "alice"},
			want:    "\n\n### Credits\n\nHuge thanks to @alice and @bob for helping!",
		},
		{
			name:    "three authors oxford comma",
			authors: []string{"carol", "alice", "bob"},
			want:    "\n\n### Credits\n\nHuge thanks to @alice, @bob, and @carol for helping!",
		},
		{
			name:    "at prefix stripped and deduped",
			authors: []string{"@alice", "alice", " alice "},
			want:    "\n\n### Credits\n\nHuge thanks to @alice for helping!",
		},
		{
			name:    "empty handles ignored",
			authors: []string{"", "@", "  ", "alice"},
			want:    "\n\n### Credits\n\nHuge thanks to @alice for helping!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewRunState()
			for _, a := range tt.authors {
				state.AddAuthor(a)
			}
			if got := state.Credits(); got != tt.want {
				t.Errorf("Credits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreditsFlushOnce(t *testing.T) {
	state := NewRunState()
	state.AddAuthor("alice")

	if got := state.Credits(); got == "" {
		t.Fatal("first Credits() returned empty, want credits block")
	}
	if got := state.Credits(); got != "" {
		t.Errorf("second Credits() = %q, want empty", got)
	}

	// The accumulator is cleared by the flush: authors added after it stay
	// suppressed until a new run starts with a fresh RunState.
	state.AddAuthor("bob")
	if got := state.Credits(); got != "" {
		t.Errorf("Credits() after flush = %q, want empty", got)
	}
}

func TestCreditsEmptyDoesNotFlush(t *testing.T) {
	state := NewRunState()
	if got := state.Credits(); got != "" {
		t.Fatalf("Credits() on empty state = %q, want empty", got)
	}

	// An empty result is not a flush; authors recorded later still render.
	state.AddAuthor("alice")
	want := "\n\n### Credits\n\nHuge thanks to @alice for helping!"
	if got := state.Credits(); got != want {
		t.Errorf("Credits() = %q, want %q", got, want)
	}
}
