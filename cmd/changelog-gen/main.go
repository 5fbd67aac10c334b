/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements changelog-gen, a small CLI that renders one
// changelog section from a directory of changeset files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"chainguard.dev/relnotes/changeset"
	"chainguard.dev/relnotes/ghinfo"
	"chainguard.dev/relnotes/releaseline"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

type config struct {
	// GitHubToken authenticates metadata lookups. Optional; without it the
	// client is unauthenticated and rate-limited aggressively.
	GitHubToken string `env:"GITHUB_TOKEN"`
}

func main() {
	ctx := context.Background()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}

func rootCmd() *cobra.Command {
	var dir, repo, version string
	cmd := &cobra.Command{
		Use:   "changelog-gen",
		Short: "Render a changelog section from a directory of changeset files",
		Long: `changelog-gen reads every changeset file in a directory, resolves
pull-request and author metadata from GitHub, and prints the rendered
changelog section to stdout. Set GITHUB_TOKEN to authenticate lookups.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), dir, repo, version)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".changeset", "directory holding changeset files")
	cmd.Flags().StringVar(&repo, "repo", "", `repository slug rendered links point at, e.g. "chainguard-dev/clog"`)
	cmd.Flags().StringVar(&version, "version", "", "optional version heading for the section")
	_ = cmd.MarkFlagRequired("repo")
	return cmd
}

func run(ctx context.Context, out io.Writer, dir, repo, version string) error {
	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	paths, err := changesetPaths(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		clog.InfoContextf(ctx, "No changesets found in %s", dir)
		return nil
	}

	type item struct {
		cs   *changeset.Changeset
		kind string
	}
	items := make([]item, 0, len(paths))
	for _, p := range paths {
		cs, releases, err := changeset.ParseFile(p)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		it := item{cs: cs}
		if len(releases) > 0 {
			it.kind = releases[0].Bump
		}
		items = append(items, it)
	}

	renderer := releaseline.New(ghinfo.NewWithToken(ctx, cfg.GitHubToken))
	state := releaseline.NewRunState()

	if version != "" {
		fmt.Fprintf(out, "## %s\n\n", version)
	}
	for i, it := range items {
		line, err := renderer.ReleaseLine(ctx, it.cs, it.kind, state, releaseline.Options{
			Repo:   repo,
			IsLast: i == len(items)-1,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// changesetPaths lists the changeset files in dir, sorted by name. README.md
// is the directory's own documentation, not a changeset.
func changesetPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading changeset directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") || strings.EqualFold(name, "README.md") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	slices.Sort(paths)
	return paths, nil
}
