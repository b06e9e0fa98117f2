package releaser

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "releaser"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) PublishRelease(ctx context.Context, event githubapi.ReleaseEvent) (run *Run, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "PublishRelease"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.PublishRelease(ctx, event)
}

func (s *tracingService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "HasValidSignature"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}
