package releaser

import (
	"context"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) PublishRelease(ctx context.Context, event githubapi.ReleaseEvent) (run *Run, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "PublishRelease", begin)
	}(time.Now())

	return s.Service.PublishRelease(ctx, event)
}

func (s *metricsService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "HasValidSignature", begin)
	}(time.Now())

	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}
