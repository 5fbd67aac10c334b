/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package releaseline

import (
	"slices"
	"strings"
)

// RunState accumulates author credits across the render calls of one
// changelog run. The caller creates one per run and discards it afterwards;
// sharing a RunState across runs would leak credits between entries.
//
// RunState is not safe for concurrent use. Render calls within a run are
// sequential by contract, so the flush-once invariant is enforced by state
// transitions rather than locks.
type RunState struct {
	authors map[string]struct{}
	flushed bool
}

// NewRunState returns an empty RunState for a new changelog run.
func NewRunState() *RunState {
	return &RunState{authors: make(map[string]struct{})}
}

// AddAuthor records a handle for the end-of-run credits. A leading @ is
// stripped; empty handles are ignored.
func (s *RunState) AddAuthor(handle string) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return
	}
	s.authors[handle] = struct{}{}
}

// Credits renders the credits block for every accumulated author and resets
// the state. It returns "" when no authors were recorded, and "" on every
// call after the first flush of a run.
func (s *RunState) Credits() string {
	if s.flushed || len(s.authors) == 0 {
		return ""
	}
	handles := make([]string, 0, len(s.authors))
	for h := range s.authors {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	for i, h := range handles {
		handles[i] = "@" + h
	}

	s.flushed = true
	clear(s.authors)

	return "\n\n### Credits\n\nHuge thanks to " + proseList(handles) + " for helping!"
}

// proseList joins items in prose form, with an Oxford comma before the last
// of three or more.
func proseList(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
