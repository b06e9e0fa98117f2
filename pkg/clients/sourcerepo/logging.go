package sourcerepo

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "sourcerepo"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) CloneTag(ctx context.Context, authenticatedURL, tag, dir string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CloneTag", err) }()

	return c.Client.CloneTag(ctx, authenticatedURL, tag, dir)
}

func (c *loggingClient) CreateBranch(ctx context.Context, dir, branchName string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreateBranch", err) }()

	return c.Client.CreateBranch(ctx, dir, branchName)
}

func (c *loggingClient) CommitFile(ctx context.Context, dir, relativePath, message string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CommitFile", err) }()

	return c.Client.CommitFile(ctx, dir, relativePath, message)
}

func (c *loggingClient) PushBranch(ctx context.Context, dir, branchName string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "PushBranch", err) }()

	return c.Client.PushBranch(ctx, dir, branchName)
}
