package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// Revision reports the checked out commit of the submission. Branch is
// empty on a detached HEAD, which is how CI checks out pull requests.
func (g *GitInfoAdapter) Revision(projectPath string) (domain.Revision, error) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.Revision{}, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return domain.Revision{}, fmt.Errorf("getting HEAD: %w", err)
	}

	rev := domain.Revision{Hash: head.Hash().String()}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}
	return rev, nil
}
