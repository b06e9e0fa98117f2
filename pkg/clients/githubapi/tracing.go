package githubapi

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "githubapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetGithubAppToken(ctx context.Context) (token string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetGithubAppToken"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetGithubAppToken(ctx)
}

func (c *tracingClient) GetInstallationToken(ctx context.Context, installationID int) (accessToken AccessToken, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetInstallationToken"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetInstallationToken(ctx, installationID)
}

func (c *tracingClient) GetAuthenticatedRepositoryURL(accessToken AccessToken, htmlURL string) (url string, err error) {
	return c.Client.GetAuthenticatedRepositoryURL(accessToken, htmlURL)
}

func (c *tracingClient) UploadReleaseAsset(ctx context.Context, accessToken AccessToken, event ReleaseEvent, assetPath string) (asset ReleaseAsset, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "UploadReleaseAsset"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.UploadReleaseAsset(ctx, accessToken, event, assetPath)
}

func (c *tracingClient) CreatePullRequest(ctx context.Context, accessToken AccessToken, event ReleaseEvent, head, base, title, body string) (pullRequest PullRequest, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreatePullRequest"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.CreatePullRequest(ctx, accessToken, event, head, base, title, body)
}
