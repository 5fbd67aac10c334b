/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package ghinfo resolves pull-request, commit, and author metadata from the
// GitHub API for release-note rendering.
//
// The releaseline package consumes the Resolver interface, so tests and
// other hosts can substitute their own implementation; Client is the
// go-github-backed implementation used in production.
package ghinfo

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	"golang.org/x/oauth2"
)

// Info is the metadata resolved for a commit or pull request. Zero fields
// mean the corresponding piece could not be determined.
type Info struct {
	// PullNumber is the associated pull request number, if any.
	PullNumber int

	// CommitHash is the canonical commit hash, if any.
	CommitHash string

	// User is the GitHub login to credit, if any.
	User string

	// Links holds browse URLs for the resolved pieces.
	Links Links
}

// Links holds browse URLs for resolved metadata.
type Links struct {
	Commit string
	Pull   string
	User   string
}

// Resolver resolves release-note metadata for commits and pull requests.
// Both calls may be slow (network I/O) and may fail; callers are expected
// to degrade gracefully rather than abort.
type Resolver interface {
	// ByCommit resolves metadata starting from a commit hash.
	ByCommit(ctx context.Context, repo, commit string) (*Info, error)

	// ByPull resolves metadata starting from a pull request number.
	ByPull(ctx context.Context, repo string, pull int) (*Info, error)
}

// Client is a Resolver backed by the GitHub API.
type Client struct {
	gh *github.Client
}

// New returns a Client using the provided GitHub client.
func New(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// NewWithToken returns a Client authenticated with token. An empty token
// yields an unauthenticated client, subject to much lower rate limits.
func NewWithToken(ctx context.Context, token string) *Client {
	var hc *http.Client
	if token != "" {
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	return &Client{gh: github.NewClient(hc)}
}

// ByPull resolves the merge commit and author for a pull request.
func (c *Client) ByPull(ctx context.Context, repo string, pull int) (*Info, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	pr, _, err := c.gh.PullRequests.Get(ctx, owner, name, pull)
	if err != nil {
		return nil, fmt.Errorf("fetching pull request #%d: %w", pull, err)
	}

	info := &Info{
		PullNumber: pull,
		Links: Links{
			Pull: pr.GetHTMLURL(),
		},
	}
	if info.Links.Pull == "" {
		info.Links.Pull = fmt.Sprintf("https://github.com/%s/pull/%d", repo, pull)
	}
	if sha := pr.GetMergeCommitSHA(); sha != "" {
		info.CommitHash = sha
		info.Links.Commit = fmt.Sprintf("https://github.com/%s/commit/%s", repo, sha)
	}
	if login := pr.GetUser().GetLogin(); login != "" {
		info.User = login
		info.Links.User = "https://github.com/" + login
	}
	return info, nil
}

// ByCommit resolves the author and any associated pull request for a commit.
func (c *Client) ByCommit(ctx context.Context, repo, commit string) (*Info, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	rc, _, err := c.gh.Repositories.GetCommit(ctx, owner, name, commit, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching commit %s: %w", commit, err)
	}

	info := &Info{
		CommitHash: commit,
		Links: Links{
			Commit: rc.GetHTMLURL(),
		},
	}
	if info.Links.Commit == "" {
		info.Links.Commit = fmt.Sprintf("https://github.com/%s/commit/%s", repo, commit)
	}
	if login := rc.GetAuthor().GetLogin(); login != "" {
		info.User = login
		info.Links.User = "https://github.com/" + login
	}

	prs, _, err := c.gh.PullRequests.ListPullRequestsWithCommit(ctx, owner, name, commit, nil)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests for commit %s: %w", commit, err)
	}
	if pr := pickPull(prs, commit); pr != nil {
		info.PullNumber = pr.GetNumber()
		info.Links.Pull = pr.GetHTMLURL()
		if info.Links.Pull == "" {
			info.Links.Pull = fmt.Sprintf("https://github.com/%s/pull/%d", repo, info.PullNumber)
		}
		if info.User == "" {
			if login := pr.GetUser().GetLogin(); login != "" {
				info.User = login
				info.Links.User = "https://github.com/" + login
			}
		}
	}
	return info, nil
}

// pickPull chooses which associated pull request to attribute a commit to:
// the merged PR whose merge commit is the commit itself, else the first
// merged PR. Unmerged PRs are never attributed.
func pickPull(prs []*github.PullRequest, commit string) *github.PullRequest {
	var firstMerged *github.PullRequest
	for _, pr := range prs {
		if pr.MergedAt == nil {
			continue
		}
		if pr.GetMergeCommitSHA() == commit {
			return pr
		}
		if firstMerged == nil {
			firstMerged = pr
		}
	}
	return firstMerged
}

// splitRepo splits an "owner/name" slug.
func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repo %q: expected owner/name", repo)
	}
	return owner, name, nil
}
