package githubapi

import (
	"context"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetGithubAppToken(ctx context.Context) (token string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetGithubAppToken", begin)
	}(time.Now())

	return c.Client.GetGithubAppToken(ctx)
}

func (c *metricsClient) GetInstallationToken(ctx context.Context, installationID int) (accessToken AccessToken, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetInstallationToken", begin)
	}(time.Now())

	return c.Client.GetInstallationToken(ctx, installationID)
}

func (c *metricsClient) GetAuthenticatedRepositoryURL(accessToken AccessToken, htmlURL string) (url string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetAuthenticatedRepositoryURL", begin)
	}(time.Now())

	return c.Client.GetAuthenticatedRepositoryURL(accessToken, htmlURL)
}

func (c *metricsClient) UploadReleaseAsset(ctx context.Context, accessToken AccessToken, event ReleaseEvent, assetPath string) (asset ReleaseAsset, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "UploadReleaseAsset", begin)
	}(time.Now())

	return c.Client.UploadReleaseAsset(ctx, accessToken, event, assetPath)
}

func (c *metricsClient) CreatePullRequest(ctx context.Context, accessToken AccessToken, event ReleaseEvent, head, base, title, body string) (pullRequest PullRequest, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "CreatePullRequest", begin)
	}(time.Now())

	return c.Client.CreatePullRequest(ctx, accessToken, event, head, base, title, body)
}
