package sources

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/termstack/palette/internal/logging"
	"github.com/termstack/palette/pkg/palette"
)

// Git lists the local branches of the repository at dir as "switch to
// branch" actions. A directory that is not a git repository yields no
// entries rather than failing the population.
func Git(dir string, log *logging.Logger) palette.Source {
	log = log.WithComponent("sources.git")

	return func(ctx context.Context, _ *palette.Model) ([]palette.Entry, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		repo, err := git.PlainOpen(dir)
		if err != nil {
			if errors.Is(err, git.ErrRepositoryNotExists) {
				log.WithFields(map[string]any{"dir": dir}).Debug("not a git repository")
				return nil, nil
			}
			return nil, err
		}

		current := ""
		if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
			current = head.Name().Short()
		}

		iter, err := repo.Branches()
		if err != nil {
			return nil, err
		}

		var entries []palette.Entry
		err = iter.ForEach(func(ref *plumbing.Reference) error {
			name := ref.Name().Short()

			subtitle := shortHash(ref.Hash().String())
			if name == current {
				subtitle += " · current"
			}

			entries = append(entries, palette.Entry{
				ID:       "git-branch-" + name,
				Title:    "Switch to " + name,
				Subtitle: subtitle,
				Run:      checkoutBranch(repo, name, log),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}

		return entries, nil
	}
}

func checkoutBranch(repo *git.Repository, name string, log *logging.Logger) palette.Action {
	return func(host palette.Host, entry palette.Entry) error {
		wt, err := repo.Worktree()
		if err != nil {
			return err
		}

		if err := wt.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(name),
		}); err != nil {
			return fmt.Errorf("checkout %s: %w", name, err)
		}

		log.WithFields(map[string]any{"branch": name}).Info("switched branch")
		return nil
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
