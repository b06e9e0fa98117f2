package registryapi

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "registryapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) PublishPackage(ctx context.Context, packageName, version string, artifactPaths []string) (artifacts []PublishedArtifact, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "PublishPackage", err, ErrVersionAlreadyPublished) }()

	return c.Client.PublishPackage(ctx, packageName, version, artifactPaths)
}

func (c *loggingClient) PackageVersionExists(ctx context.Context, packageName, version string) (exists bool, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "PackageVersionExists", err) }()

	return c.Client.PackageVersionExists(ctx, packageName, version)
}
