package toolchain

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "toolchain"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ProvisionRuntime(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ProvisionRuntime", err) }()

	return c.Client.ProvisionRuntime(ctx)
}

func (c *loggingClient) ProvisionPackager(ctx context.Context) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ProvisionPackager", err) }()

	return c.Client.ProvisionPackager(ctx)
}

func (c *loggingClient) WriteCredentials(ctx context.Context, workDir string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "WriteCredentials", err) }()

	return c.Client.WriteCredentials(ctx, workDir)
}

func (c *loggingClient) Build(ctx context.Context, workDir string) (artifactPaths []string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Build", err) }()

	return c.Client.Build(ctx, workDir)
}
