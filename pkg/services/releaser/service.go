package releaser

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/estafette/estafette-release-publisher/pkg/clients/registryapi"
	"github.com/estafette/estafette-release-publisher/pkg/clients/sourcerepo"
	"github.com/estafette/estafette-release-publisher/pkg/clients/toolchain"
	"github.com/estafette/estafette-release-publisher/pkg/manifest"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrIgnoredEvent = errors.New("The event does not trigger a publish")
)

// Service turns a single release event into a published package and a version-bump proposal
//
//go:generate mockgen -package=releaser -destination ./mock.go -source=service.go
type Service interface {
	PublishRelease(ctx context.Context, event githubapi.ReleaseEvent) (run *Run, err error)
	HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool, err error)
}

// NewService returns a releaser.Service running the publish pipeline
func NewService(config *api.APIConfig, githubapiClient githubapi.Client, registryapiClient registryapi.Client, sourcerepoClient sourcerepo.Client, toolchainClient toolchain.Client) Service {
	return &service{
		config:            config,
		githubapiClient:   githubapiClient,
		registryapiClient: registryapiClient,
		sourcerepoClient:  sourcerepoClient,
		toolchainClient:   toolchainClient,
	}
}

type service struct {
	config            *api.APIConfig
	githubapiClient   githubapi.Client
	registryapiClient registryapi.Client
	sourcerepoClient  sourcerepo.Client
	toolchainClient   toolchain.Client
}

// PublishRelease runs the 8 pipeline steps strictly in order; the first failing step aborts
// the run and nothing downstream executes. Steps that already mutated external systems are
// not compensated.
func (s *service) PublishRelease(ctx context.Context, event githubapi.ReleaseEvent) (run *Run, err error) {

	if event.Action != "published" || event.Release.Draft {
		return nil, ErrIgnoredEvent
	}

	run = &Run{
		ID:           uuid.New().String(),
		RepoFullName: event.GetRepoFullName(),
		Tag:          event.Release.TagName,
		StartedAt:    time.Now().UTC(),
	}

	workDir := filepath.Join(s.config.Pipeline.WorkDir, run.ID)
	manifestPath := filepath.Join(workDir, s.config.Pipeline.ManifestFilename)

	// the artifact set is ephemeral, discard the workspace when the run ends
	defer func() {
		if removeErr := os.RemoveAll(workDir); removeErr != nil {
			log.Warn().Err(removeErr).Msgf("Failed removing workspace %v for run %v", workDir, run.ID)
		}
	}()

	var accessToken githubapi.AccessToken
	var packageManifest manifest.Manifest
	var artifactPaths []string

	steps := []struct {
		step Step
		fn   func(context.Context) error
	}{
		{StepAcquireSource, func(ctx context.Context) error {
			token, tokenErr := s.githubapiClient.GetInstallationToken(ctx, event.Installation.ID)
			if tokenErr != nil {
				return tokenErr
			}
			accessToken = token

			authenticatedURL, urlErr := s.githubapiClient.GetAuthenticatedRepositoryURL(accessToken, event.Repository.HTMLURL)
			if urlErr != nil {
				return urlErr
			}

			return s.sourcerepoClient.CloneTag(ctx, authenticatedURL, event.Release.TagName, workDir)
		}},
		{StepProvisionRuntime, func(ctx context.Context) error {
			return s.toolchainClient.ProvisionRuntime(ctx)
		}},
		{StepProvisionPackager, func(ctx context.Context) error {
			return s.toolchainClient.ProvisionPackager(ctx)
		}},
		{StepConfigureCredentials, func(ctx context.Context) error {
			return s.toolchainClient.WriteCredentials(ctx, workDir)
		}},
		{StepRewriteVersion, func(ctx context.Context) error {
			// the tag is written into the manifest verbatim, its format is not validated
			if rewriteErr := manifest.RewriteVersion(manifestPath, event.Release.TagName); rewriteErr != nil {
				return rewriteErr
			}

			m, readErr := manifest.ReadFromFile(manifestPath)
			if readErr != nil {
				return readErr
			}
			packageManifest = m

			return nil
		}},
		{StepBuildAndPublish, func(ctx context.Context) error {
			paths, buildErr := s.toolchainClient.Build(ctx, workDir)
			if buildErr != nil {
				return buildErr
			}
			artifactPaths = paths

			// the registry rejects duplicate uploads anyway, but the index check gives a
			// clean error before any artifact bytes go over the wire
			exists, existsErr := s.registryapiClient.PackageVersionExists(ctx, packageManifest.Name, event.Release.TagName)
			if existsErr != nil {
				log.Warn().Err(existsErr).Msgf("Checking registry index for package %v version %v failed, attempting upload anyway", packageManifest.Name, event.Release.TagName)
			} else if exists {
				return registryapi.ErrVersionAlreadyPublished
			}

			_, publishErr := s.registryapiClient.PublishPackage(ctx, packageManifest.Name, event.Release.TagName, artifactPaths)

			return publishErr
		}},
		{StepAttachArtifacts, func(ctx context.Context) error {
			// an empty artifact set makes this a no-op, not a failure
			for _, artifactPath := range artifactPaths {
				asset, uploadErr := s.githubapiClient.UploadReleaseAsset(ctx, accessToken, event, artifactPath)
				if uploadErr != nil {
					return uploadErr
				}
				run.Artifacts = append(run.Artifacts, asset.Name)
			}

			return nil
		}},
		{StepProposeVersionBump, func(ctx context.Context) error {
			branchName := versionBumpBranchName(time.Now())

			if branchErr := s.sourcerepoClient.CreateBranch(ctx, workDir, branchName); branchErr != nil {
				return branchErr
			}

			commitMessage := fmt.Sprintf("Bump version to %v", event.Release.TagName)
			if commitErr := s.sourcerepoClient.CommitFile(ctx, workDir, s.config.Pipeline.ManifestFilename, commitMessage); commitErr != nil {
				return commitErr
			}

			if pushErr := s.sourcerepoClient.PushBranch(ctx, workDir, branchName); pushErr != nil {
				return pushErr
			}

			title := fmt.Sprintf("Bump version to %v", event.Release.TagName)
			body := fmt.Sprintf("Persists the version bump for release %v back into %v.", event.Release.TagName, s.config.Pipeline.TargetBranch)
			pullRequest, prErr := s.githubapiClient.CreatePullRequest(ctx, accessToken, event, branchName, s.config.Pipeline.TargetBranch, title, body)
			if prErr != nil {
				return prErr
			}
			run.PullRequestURL = pullRequest.HTMLURL

			return nil
		}},
	}

	for _, step := range steps {
		begin := time.Now()
		stepErr := step.fn(ctx)
		run.Results = append(run.Results, StepResult{Step: step.step, Err: stepErr, Duration: time.Since(begin)})

		if stepErr != nil {
			// fail fast, already completed steps are not rolled back
			return run, pkgerrors.Wrapf(stepErr, "Publishing release %v for repository %v failed at step %v", event.Release.TagName, event.GetRepoFullName(), step.step)
		}

		log.Debug().
			Str("runID", run.ID).
			Str("step", string(step.step)).
			Msgf("Finished step %v for release %v of repository %v", step.step, event.Release.TagName, event.GetRepoFullName())
	}

	return run, nil
}

// HasValidSignature verifies the webhook hmac signature against the configured secret
func (s *service) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (bool, error) {

	// https://developer.github.com/webhooks/securing/
	signature := strings.Replace(signatureHeader, "sha1=", "", 1)
	actualMAC, err := hex.DecodeString(signature)
	if err != nil {
		return false, errors.New("Decoding hexadecimal X-Hub-Signature to byte array failed")
	}

	// calculate expected MAC
	mac := hmac.New(sha1.New, []byte(s.config.Integrations.Github.WebhookSecret))
	mac.Write(body)
	expectedMAC := mac.Sum(nil)

	// compare actual and expected MAC
	if hmac.Equal(actualMAC, expectedMAC) {
		return true, nil
	}

	log.Warn().
		Str("expectedMAC", hex.EncodeToString(expectedMAC)).
		Str("actualMAC", hex.EncodeToString(actualMAC)).
		Msg("Expected and actual MAC do not match")

	return false, nil
}
