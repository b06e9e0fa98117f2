package toolchain

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "toolchain"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ProvisionRuntime(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ProvisionRuntime"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ProvisionRuntime(ctx)
}

func (c *tracingClient) ProvisionPackager(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ProvisionPackager"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ProvisionPackager(ctx)
}

func (c *tracingClient) WriteCredentials(ctx context.Context, workDir string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "WriteCredentials"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.WriteCredentials(ctx, workDir)
}

func (c *tracingClient) Build(ctx context.Context, workDir string) (artifactPaths []string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "Build"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.Build(ctx, workDir)
}
