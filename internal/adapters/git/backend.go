package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/domain"
	"github.com/scribibble/dpnd/internal/core/ports"
)

// Options configures a Backend.
type Options struct {
	// Binary is the git executable. Defaults to "git".
	Binary string

	// DryRun logs the commands that would run instead of executing them.
	DryRun bool

	// Quiet passes --quiet to fetch, suppressing progress output.
	Quiet bool
}

// Backend implements ports.VCSBackend by shelling out to the git client.
type Backend struct {
	runner ports.Runner
	logger ports.Logger
	opts   Options
}

// NewBackend creates a git backend using the given runner.
func NewBackend(runner ports.Runner, logger ports.Logger, opts Options) *Backend {
	if opts.Binary == "" {
		opts.Binary = "git"
	}
	return &Backend{runner: runner, logger: logger, opts: opts}
}

// PopulateRef leaves targetDir checked out at ref.
//
// The sequence is: ensure the directory exists, init a repository if the
// directory is not one yet, point origin at url, fetch ref (shallow when
// depth > 0) and hard-reset the working tree to FETCH_HEAD. Every step is
// individually idempotent, so re-running after an interruption converges
// on the same state.
func (b *Backend) PopulateRef(ctx context.Context, targetDir, url, ref string, depth int) error {
	if b.opts.DryRun {
		b.logDryRun(targetDir, url, ref, depth)
		return nil
	}

	if err := os.MkdirAll(targetDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTargetCreateFailed.Error()), "target", targetDir)
	}

	if !isRepository(targetDir) {
		if err := b.run(ctx, targetDir, "init", "--quiet"); err != nil {
			return b.fetchErr(err, targetDir, url, ref)
		}
	}

	if err := b.ensureOrigin(ctx, targetDir, url); err != nil {
		return b.fetchErr(err, targetDir, url, ref)
	}

	fetchArgs := []string{"fetch", "origin", ref}
	if depth > 0 {
		fetchArgs = append(fetchArgs, "--depth", strconv.Itoa(depth))
	}
	if b.opts.Quiet {
		fetchArgs = append(fetchArgs, "--quiet")
	}
	if err := b.run(ctx, targetDir, fetchArgs...); err != nil {
		return b.fetchErr(err, targetDir, url, ref)
	}

	if err := b.run(ctx, targetDir, "reset", "--hard", "FETCH_HEAD", "--quiet"); err != nil {
		return b.fetchErr(err, targetDir, url, ref)
	}

	return nil
}

func (b *Backend) ensureOrigin(ctx context.Context, targetDir, url string) error {
	current, err := b.runner.Output(ctx, targetDir, b.opts.Binary, "remote", "get-url", "origin")
	if err != nil {
		// No origin yet.
		return b.run(ctx, targetDir, "remote", "add", "origin", url)
	}
	if current != url {
		return b.run(ctx, targetDir, "remote", "set-url", "origin", url)
	}
	return nil
}

func (b *Backend) run(ctx context.Context, dir string, args ...string) error {
	return b.runner.Run(ctx, dir, b.opts.Binary, args...)
}

func (b *Backend) fetchErr(err error, targetDir, url, ref string) error {
	err = zerr.Wrap(err, domain.ErrFetchFailed.Error())
	err = zerr.With(err, "target", targetDir)
	err = zerr.With(err, "url", url)
	return zerr.With(err, "ref", ref)
}

func (b *Backend) logDryRun(targetDir, url, ref string, depth int) {
	cmds := []string{
		fmt.Sprintf("%s init %s", b.opts.Binary, targetDir),
		fmt.Sprintf("%s remote add origin %s", b.opts.Binary, url),
		fmt.Sprintf("%s fetch origin %s", b.opts.Binary, ref),
		fmt.Sprintf("%s reset --hard FETCH_HEAD", b.opts.Binary),
	}
	if depth > 0 {
		cmds[2] += " --depth " + strconv.Itoa(depth)
	}
	b.logger.Info("dry-run: " + strings.Join(cmds, " && "))
}

func isRepository(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
