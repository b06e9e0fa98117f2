package registryapi

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "registryapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) PublishPackage(ctx context.Context, packageName, version string, artifactPaths []string) (artifacts []PublishedArtifact, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "PublishPackage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.PublishPackage(ctx, packageName, version, artifactPaths)
}

func (c *tracingClient) PackageVersionExists(ctx context.Context, packageName, version string) (exists bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "PackageVersionExists"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.PackageVersionExists(ctx, packageName, version)
}
