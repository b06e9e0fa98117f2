package githubapi

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "githubapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetGithubAppToken(ctx context.Context) (token string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetGithubAppToken", err) }()

	return c.Client.GetGithubAppToken(ctx)
}

func (c *loggingClient) GetInstallationToken(ctx context.Context, installationID int) (accessToken AccessToken, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetInstallationToken", err) }()

	return c.Client.GetInstallationToken(ctx, installationID)
}

func (c *loggingClient) GetAuthenticatedRepositoryURL(accessToken AccessToken, htmlURL string) (url string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetAuthenticatedRepositoryURL", err) }()

	return c.Client.GetAuthenticatedRepositoryURL(accessToken, htmlURL)
}

func (c *loggingClient) UploadReleaseAsset(ctx context.Context, accessToken AccessToken, event ReleaseEvent, assetPath string) (asset ReleaseAsset, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "UploadReleaseAsset", err) }()

	return c.Client.UploadReleaseAsset(ctx, accessToken, event, assetPath)
}

func (c *loggingClient) CreatePullRequest(ctx context.Context, accessToken AccessToken, event ReleaseEvent, head, base, title, body string) (pullRequest PullRequest, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreatePullRequest", err) }()

	return c.Client.CreatePullRequest(ctx, accessToken, event, head, base, title, body)
}
