package sourcerepo

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "sourcerepo"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) CloneTag(ctx context.Context, authenticatedURL, tag, dir string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CloneTag"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CloneTag(ctx, authenticatedURL, tag, dir)
}

func (c *tracingClient) CreateBranch(ctx context.Context, dir, branchName string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreateBranch"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CreateBranch(ctx, dir, branchName)
}

func (c *tracingClient) CommitFile(ctx context.Context, dir, relativePath, message string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CommitFile"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CommitFile(ctx, dir, relativePath, message)
}

func (c *tracingClient) PushBranch(ctx context.Context, dir, branchName string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "PushBranch"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.PushBranch(ctx, dir, branchName)
}
