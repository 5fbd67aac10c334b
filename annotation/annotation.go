/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package annotation extracts directive lines from changeset summaries.
//
// A directive is a recognized prefix at the start of a line (optionally
// indented) that overrides inferred metadata and is stripped from the
// rendered body:
//
//	pr: #2100
//	commit: a085003
//	author: @alice, @bob
//	ticket: https://issues.example.com/browse/PRO-142
//
// Extraction classifies each line exactly once, first-match-wins per
// directive kind. Lines whose directive value fails validation (a
// non-numeric pull number, a non-URL ticket) are left in the body untouched.
package annotation

import (
	"net/url"
	"strconv"
	"strings"
)

// Annotations holds the cleaned summary body and the overrides extracted
// from it. They are scoped to a single summary and discarded after use.
type Annotations struct {
	// Body is the summary with directive lines removed, trimmed of leading
	// and trailing blank lines. Each remaining line has trailing whitespace
	// stripped.
	Body string

	// PullNumber is the pull request override; zero means unset.
	PullNumber int

	// Commit is the commit hash override; empty means unset.
	Commit string

	// Authors are handles from author/user directives, de-duplicated,
	// in first-seen order, without any leading @.
	Authors []string

	// Tickets are absolute ticket URLs from ticket directives, in order.
	Tickets []string
}

// Extract scans the summary line by line, consuming recognized directive
// lines and returning the cleaned body alongside the extracted overrides.
func Extract(summary string) Annotations {
	ex := extractor{seen: make(map[string]struct{})}

	var body []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimRight(line, "\r")
		if ex.classify(line) {
			continue
		}
		body = append(body, strings.TrimRight(line, " \t"))
	}

	// Trim leading and trailing blank lines from the body.
	for len(body) > 0 && body[0] == "" {
		body = body[1:]
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	ex.ann.Body = strings.Join(body, "\n")
	return ex.ann
}

type extractor struct {
	ann Annotations

	// seen de-duplicates author handles across directive lines.
	seen map[string]struct{}
}

// classify reports whether line is a directive, recording its value as a
// side effect. Directive keywords are matched case-insensitively at the
// start of the line, after optional whitespace.
func (ex *extractor) classify(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	before, value, ok := strings.Cut(trimmed, ":")
	if !ok {
		return false
	}
	key := strings.Join(strings.Fields(strings.ToLower(before)), " ")
	value = strings.TrimSpace(value)

	switch key {
	case "pr", "pull", "pull request":
		return ex.pull(value)
	case "commit":
		return ex.commit(value)
	case "author", "user":
		return ex.authors(value)
	case "ticket":
		return ex.ticket(value)
	}
	return false
}

// pull records a pull-number directive. The value is digits with an optional
// leading #. A later duplicate is consumed but does not override the first.
func (ex *extractor) pull(value string) bool {
	n, err := strconv.Atoi(strings.TrimPrefix(value, "#"))
	if err != nil || n <= 0 {
		return false
	}
	if ex.ann.PullNumber == 0 {
		ex.ann.PullNumber = n
	}
	return true
}

// commit records a commit-hash directive. The hash is the first
// whitespace-delimited token of the value. First match wins.
func (ex *extractor) commit(value string) bool {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return false
	}
	if ex.ann.Commit == "" {
		ex.ann.Commit = fields[0]
	}
	return true
}

// authors records an author/user directive: one handle, or a comma-separated
// list. Handles keep first-seen order across multiple directive lines.
func (ex *extractor) authors(value string) bool {
	var handles []string
	for _, part := range strings.Split(value, ",") {
		handle := strings.TrimPrefix(strings.TrimSpace(part), "@")
		if handle != "" {
			handles = append(handles, handle)
		}
	}
	if len(handles) == 0 {
		return false
	}
	for _, handle := range handles {
		if _, dup := ex.seen[handle]; dup {
			continue
		}
		ex.seen[handle] = struct{}{}
		ex.ann.Authors = append(ex.ann.Authors, handle)
	}
	return true
}

// ticket records a ticket directive. Only absolute URLs are accepted;
// anything else leaves the line in the body.
func (ex *extractor) ticket(value string) bool {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	ex.ann.Tickets = append(ex.ann.Tickets, value)
	return true
}
