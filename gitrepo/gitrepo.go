// Package gitrepo handles cloning source repositories and reading branch
// information from existing ones.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrTargetNotEmpty is returned when the clone target directory already has
// contents and force was not requested.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// CloneOptions controls how a repository is fetched.
type CloneOptions struct {
	URL       string
	Branch    string
	TargetDir string
	// Force removes an existing non-empty target directory before cloning.
	Force bool
}

// Clone fetches the repository at opts.URL into opts.TargetDir and returns
// the checked-out branch name. A shallow single-branch clone is enough for
// document generation.
func Clone(ctx context.Context, opts CloneOptions, logger *slog.Logger) (string, error) {
	if err := prepareTarget(opts.TargetDir, opts.Force, logger); err != nil {
		return "", err
	}

	cloneOpts := &git.CloneOptions{
		URL:          opts.URL,
		SingleBranch: true,
		Depth:        1,
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}

	logger.Info("cloning repository", "url", opts.URL, "branch", opts.Branch, "target", opts.TargetDir)
	repo, err := git.PlainCloneContext(ctx, opts.TargetDir, false, cloneOpts)
	if err != nil {
		return "", fmt.Errorf("cloning %s: %w", opts.URL, err)
	}

	return headBranch(repo), nil
}

// CurrentBranch returns the branch name of the repository at dir, or "" when
// dir is not a git repository or HEAD is detached.
func CurrentBranch(dir string) string {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return ""
	}
	return headBranch(repo)
}

// IsRepository reports whether dir contains a git repository.
func IsRepository(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

// headBranch resolves HEAD to a short branch name, or "" for a detached HEAD.
func headBranch(repo *git.Repository) string {
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

// prepareTarget validates the clone destination. An existing empty directory
// is acceptable as-is; a non-empty one is removed only with force.
func prepareTarget(dir string, force bool, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspecting target directory: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	if !force {
		return fmt.Errorf("%w: %s (use force to overwrite)", ErrTargetNotEmpty, dir)
	}

	logger.Warn("removing existing target directory", "target", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing target directory: %w", err)
	}
	return nil
}
