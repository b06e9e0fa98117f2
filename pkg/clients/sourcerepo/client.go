package sourcerepo

import (
	"context"
	"fmt"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/rs/zerolog/log"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/config"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
)

// Client is the interface for fetching and mutating git working copies
//
//go:generate mockgen -package=sourcerepo -destination ./mock.go -source=client.go
type Client interface {
	CloneTag(ctx context.Context, authenticatedURL, tag, dir string) (err error)
	CreateBranch(ctx context.Context, dir, branchName string) (err error)
	CommitFile(ctx context.Context, dir, relativePath, message string) (err error)
	PushBranch(ctx context.Context, dir, branchName string) (err error)
}

// NewClient creates a sourcerepo.Client for git operations on the repository a release fired for
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// CloneTag clones the repository into dir at the exact state the release tag points at
func (c *client) CloneTag(ctx context.Context, authenticatedURL, tag, dir string) (err error) {

	// clones the repository into the given dir, just as a normal git clone does
	_, err = git.PlainClone(dir, false, &git.CloneOptions{
		URL:           authenticatedURL,
		ReferenceName: plumbing.ReferenceName(fmt.Sprintf("refs/tags/%v", tag)),
		Depth:         c.config.Pipeline.CloneDepth,
	})
	if err != nil {
		return err
	}

	log.Debug().Msgf("Cloned repository at tag %v into %v", tag, dir)

	return nil
}

// CreateBranch creates and checks out a new branch in the working copy
func (c *client) CreateBranch(ctx context.Context, dir, branchName string) (err error) {

	repository, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return err
	}

	return worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branchName),
		Create: true,
	})
}

// CommitFile stages the single passed file and commits it, nothing else ends up in the commit
func (c *client) CommitFile(ctx context.Context, dir, relativePath, message string) (err error) {

	repository, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}

	worktree, err := repository.Worktree()
	if err != nil {
		return err
	}

	if _, err = worktree.Add(relativePath); err != nil {
		return err
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  c.config.Pipeline.GitAuthorName,
			Email: c.config.Pipeline.GitAuthorEmail,
			When:  time.Now().UTC(),
		},
	})

	return err
}

// PushBranch pushes the passed branch to the origin remote
func (c *client) PushBranch(ctx context.Context, dir, branchName string) (err error) {

	repository, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}

	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%v:refs/heads/%v", branchName, branchName))

	err = repository.PushContext(ctx, &git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []config.RefSpec{refSpec},
	})
	if err != nil {
		return err
	}

	log.Debug().Msgf("Pushed branch %v to origin", branchName)

	return nil
}
