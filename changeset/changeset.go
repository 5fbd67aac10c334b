/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package changeset defines the changeset value type and parses
// changesets-style markdown files: a YAML frontmatter block mapping package
// names to bump types, followed by a free-text summary.
package changeset

// Changeset is a single recorded unit of change: a free-text summary plus an
// optional reference to the commit that introduced it.
type Changeset struct {
	// Summary is the free-text description written by the change author.
	// It may contain directive lines (pr:, commit:, author:, ticket:) that
	// the annotation package extracts before rendering.
	Summary string

	// Commit is the hash of the commit that added the changeset, when known.
	Commit string

	// ID identifies the changeset within a run. For files this is the base
	// name without the .md extension.
	ID string
}

// Release records one package affected by a changeset and how its version bumps.
type Release struct {
	// Name is the package name from the frontmatter.
	Name string

	// Bump is the bump type (major, minor, or patch).
	Bump string
}
