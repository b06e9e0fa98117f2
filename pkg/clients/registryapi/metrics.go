package registryapi

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

func (c *metricsClient) PublishPackage(ctx context.Context, packageName, version string, artifactPaths []string) (artifacts []PublishedArtifact, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "PublishPackage", begin)
	}(time.Now())

	return c.Client.PublishPackage(ctx, packageName, version, artifactPaths)
}

func (c *metricsClient) PackageVersionExists(ctx context.Context, packageName, version string) (exists bool, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "PackageVersionExists", begin)
	}(time.Now())

	return c.Client.PackageVersionExists(ctx, packageName, version)
}
