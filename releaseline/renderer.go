/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package releaseline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"chainguard.dev/relnotes/annotation"
	"chainguard.dev/relnotes/changeset"
	"chainguard.dev/relnotes/ghinfo"
	"github.com/chainguard-dev/clog"
)

// ErrRepoRequired indicates Options.Repo was not provided. This is a
// configuration mistake, surfaced synchronously and never retried.
var ErrRepoRequired = errors.New(`repo option is required, e.g. "chainguard-dev/clog"`)

// defaultHost is where rendered links point unless WithHost overrides it.
const defaultHost = "https://github.com"

// Options configure a single render call.
type Options struct {
	// Repo is the "owner/name" slug rendered links point at. Required.
	Repo string

	// IsLast marks the final render call of a run. It triggers the credits
	// flush; the caller must set it on exactly one call per run.
	IsLast bool
}

// Renderer formats changelog lines, resolving metadata through a
// ghinfo.Resolver.
type Renderer struct {
	resolver ghinfo.Resolver
	host     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHost overrides the base URL rendered links point at, for GitHub
// Enterprise hosts. The default is https://github.com.
func WithHost(host string) Option {
	return func(r *Renderer) {
		r.host = strings.TrimRight(host, "/")
	}
}

// New creates a Renderer that resolves metadata through resolver.
func New(resolver ghinfo.Resolver, opts ...Option) *Renderer {
	r := &Renderer{
		resolver: resolver,
		host:     defaultHost,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReleaseLine renders the markdown bullet for one changeset and folds the
// changeset's authors into state. kind is the bump type (major, minor, or
// patch); it is informational and does not affect formatting.
//
// Link precedence: a pr directive in the summary, else the pull request
// associated with the commit directive or the changeset's own commit, else a
// plain commit link, else no link. Resolver failures degrade per the package
// doc. When Options.IsLast is set the run's credits block is appended.
func (r *Renderer) ReleaseLine(ctx context.Context, cs *changeset.Changeset, kind string, state *RunState, opts Options) (string, error) {
	if opts.Repo == "" {
		return "", fmt.Errorf("rendering release line for changeset %q: %w", cs.ID, ErrRepoRequired)
	}

	ann := annotation.Extract(cs.Summary)

	var info *ghinfo.Info
	if ann.PullNumber > 0 {
		resolved, err := r.resolver.ByPull(ctx, opts.Repo, ann.PullNumber)
		if err != nil {
			clog.WarnContextf(ctx, "Resolving pull request #%d for changeset %q: %v", ann.PullNumber, cs.ID, err)
		} else {
			info = resolved
		}
	} else if commit := firstNonEmpty(ann.Commit, cs.Commit); commit != "" {
		resolved, err := r.resolver.ByCommit(ctx, opts.Repo, commit)
		if err != nil {
			clog.WarnContextf(ctx, "Resolving commit %s for changeset %q: %v", commit, cs.ID, err)
		} else {
			info = resolved
		}
	}

	// The trailing parenthetical: a pull link when a number is known, else a
	// plain commit link (also the fallback when resolution failed), then any
	// ticket links.
	var refs []string
	pull := ann.PullNumber
	if pull == 0 && info != nil {
		pull = info.PullNumber
	}
	if pull > 0 {
		refs = append(refs, fmt.Sprintf("[#%d](%s/%s/pull/%d)", pull, r.host, opts.Repo, pull))
	} else {
		var commit string
		if info != nil {
			commit = info.CommitHash
		}
		if commit = firstNonEmpty(commit, ann.Commit, cs.Commit); commit != "" {
			refs = append(refs, fmt.Sprintf("[`%s`](%s/%s/commit/%s)", commit, r.host, opts.Repo, commit))
		}
	}
	for _, ticket := range ann.Tickets {
		refs = append(refs, fmt.Sprintf("[%s](%s)", ticketLabel(ticket), ticket))
	}

	lines := strings.Split(ann.Body, "\n")

	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(strings.TrimSpace(lines[0]))
	if len(refs) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(refs, " | "))
		b.WriteString(")")
	}
	for _, line := range lines[1:] {
		b.WriteString("\n")
		if line != "" {
			b.WriteString("  ")
			b.WriteString(line)
		}
	}

	// An explicit author directive overrides crediting the resolved user.
	if len(ann.Authors) > 0 {
		for _, a := range ann.Authors {
			state.AddAuthor(a)
		}
	} else if info != nil {
		state.AddAuthor(info.User)
	}

	if opts.IsLast {
		b.WriteString(state.Credits())
	}
	return b.String(), nil
}

// ticketLabel derives the display label for a ticket URL: the trailing path
// segment, falling back to the host for URLs without a path.
func ticketLabel(ticket string) string {
	u, err := url.Parse(ticket)
	if err != nil {
		return ticket
	}
	if seg := path.Base(strings.TrimRight(u.Path, "/")); seg != "" && seg != "." && seg != "/" {
		return seg
	}
	return u.Host
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
