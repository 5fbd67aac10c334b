/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package changeset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// fence delimits the YAML frontmatter block at the top of a changeset file.
const fence = "---"

// Parse parses the contents of a changeset file into the changeset itself and
// the releases its frontmatter declares. Releases are returned sorted by
// package name since YAML mappings carry no order.
//
// The expected layout is:
//
//	---
//	"example.dev/some/module": patch
//	---
//	Fix a thing.
func Parse(id, contents string) (*Changeset, []Release, error) {
	s := strings.TrimLeft(strings.TrimPrefix(contents, "\ufeff"), " \t\r\n")

	after, ok := strings.CutPrefix(s, fence)
	if !ok {
		return nil, nil, fmt.Errorf("changeset %q: missing frontmatter fence", id)
	}
	end := strings.Index(after, "\n"+fence)
	if end < 0 {
		return nil, nil, fmt.Errorf("changeset %q: unterminated frontmatter", id)
	}
	front := after[:end]

	// The summary starts after the rest of the closing fence line.
	summary := after[end+len("\n"+fence):]
	if nl := strings.IndexByte(summary, '\n'); nl >= 0 {
		summary = summary[nl+1:]
	} else {
		summary = ""
	}

	var bumps map[string]string
	if err := yaml.Unmarshal([]byte(front), &bumps); err != nil {
		return nil, nil, fmt.Errorf("changeset %q: parsing frontmatter: %w", id, err)
	}

	releases := make([]Release, 0, len(bumps))
	for name, bump := range bumps {
		releases = append(releases, Release{Name: name, Bump: bump})
	}
	slices.SortFunc(releases, func(a, b Release) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &Changeset{
		Summary: strings.TrimSpace(summary),
		ID:      id,
	}, releases, nil
}

// ParseFile reads and parses a changeset file. The changeset ID is the file's
// base name without the .md extension.
func ParseFile(path string) (*Changeset, []Release, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading changeset: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(path), ".md")
	return Parse(id, string(raw))
}
