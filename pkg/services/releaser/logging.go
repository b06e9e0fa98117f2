package releaser

import (
	"context"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "releaser"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) PublishRelease(ctx context.Context, event githubapi.ReleaseEvent) (run *Run, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "PublishRelease", err, ErrIgnoredEvent) }()

	return s.Service.PublishRelease(ctx, event)
}

func (s *loggingService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "HasValidSignature", err) }()

	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}
