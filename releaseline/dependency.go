/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package releaseline

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/relnotes/changeset"
	"chainguard.dev/relnotes/ghinfo"
	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// Dependency names one bumped dependency for the dependency-update line.
type Dependency struct {
	Name       string
	NewVersion string
}

// DependencyLine renders the "Updated dependencies" block for a batch of
// changesets that bumped the given dependencies. Each changeset's commit is
// resolved to a commit link; lookups run concurrently but the joined links
// keep the input order. A failed lookup is logged and contributes neither a
// link nor an author, unlike the release-line fallback.
//
// Returns "" when deps is empty. When Options.IsLast is set the run's
// credits block is appended, so a trailing dependency batch participates in
// the same flush as the release lines before it.
func (r *Renderer) DependencyLine(ctx context.Context, changesets []*changeset.Changeset, deps []Dependency, state *RunState, opts Options) (string, error) {
	if opts.Repo == "" {
		return "", fmt.Errorf("rendering dependency line: %w", ErrRepoRequired)
	}
	if len(deps) == 0 {
		return "", nil
	}

	// One result slot per changeset, so completion timing cannot reorder
	// the rendered links.
	infos := make([]*ghinfo.Info, len(changesets))
	var g errgroup.Group
	for i, cs := range changesets {
		if cs.Commit == "" {
			continue
		}
		g.Go(func() error {
			resolved, err := r.resolver.ByCommit(ctx, opts.Repo, cs.Commit)
			if err != nil {
				clog.WarnContextf(ctx, "Resolving commit %s for changeset %q: %v", cs.Commit, cs.ID, err)
				return nil
			}
			infos[i] = resolved
			return nil
		})
	}
	// Failures are already logged per lookup and degrade to a missing link.
	_ = g.Wait()

	var links []string
	for i, info := range infos {
		if info == nil {
			continue
		}
		state.AddAuthor(info.User)
		commit := firstNonEmpty(info.CommitHash, changesets[i].Commit)
		links = append(links, fmt.Sprintf("[`%s`](%s/%s/commit/%s)", commit, r.host, opts.Repo, commit))
	}

	var b strings.Builder
	if len(links) > 0 {
		b.WriteString("- Updated dependencies [")
		b.WriteString(strings.Join(links, ", "))
		b.WriteString("]:")
	} else {
		b.WriteString("- Updated dependencies:")
	}
	for _, d := range deps {
		fmt.Fprintf(&b, "\n  - %s@%s", d.Name, d.NewVersion)
	}

	if opts.IsLast {
		b.WriteString(state.Credits())
	}
	return b.String(), nil
}
