/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package releaseline renders the markdown bullets of a changelog entry from
// changesets, resolving pull-request and author metadata through a
// ghinfo.Resolver.
//
// # Run lifecycle
//
// A "run" is the sequence of render calls producing one changelog entry. The
// caller creates a RunState at the start of the run, passes it into every
// call, and sets Options.IsLast on exactly the final call. Authors resolved
// or declared along the way accumulate in the RunState; the final call
// appends a credits block and resets the state, at most once per run.
//
//	r := releaseline.New(ghinfo.NewWithToken(ctx, token))
//	state := releaseline.NewRunState()
//	for i, cs := range changesets {
//	    line, err := r.ReleaseLine(ctx, cs, "patch", state, releaseline.Options{
//	        Repo:   "chainguard-dev/clog",
//	        IsLast: i == len(changesets)-1,
//	    })
//	    ...
//	}
//
// # Degradation
//
// Resolver failures are never fatal: they are logged as warnings and the
// line renders with a plain commit link (release lines) or without that
// changeset's link (dependency lines). The only error either render call
// returns is a missing Options.Repo, which is a configuration mistake and
// surfaces synchronously as ErrRepoRequired.
package releaseline
