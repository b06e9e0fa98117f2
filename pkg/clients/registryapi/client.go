package registryapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with the package registry
//
//go:generate mockgen -package=registryapi -destination ./mock.go -source=client.go
type Client interface {
	PublishPackage(ctx context.Context, packageName, version string, artifactPaths []string) (artifacts []PublishedArtifact, err error)
	PackageVersionExists(ctx context.Context, packageName, version string) (exists bool, err error)
}

// NewClient creates a registryapi.Client to upload artifacts to the package registry
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// PublishPackage uploads each artifact to the registry under the new version; it is one-shot,
// a conflict or auth failure surfaces immediately and fails the whole publish
func (c *client) PublishPackage(ctx context.Context, packageName, version string, artifactPaths []string) (artifacts []PublishedArtifact, err error) {

	for _, artifactPath := range artifactPaths {
		err = c.uploadArtifact(ctx, packageName, version, artifactPath)
		if err != nil {
			return
		}

		artifacts = append(artifacts, PublishedArtifact{
			Filename: filepath.Base(artifactPath),
			Package:  packageName,
			Version:  version,
		})

		log.Debug().Msgf("Uploaded artifact %v for package %v version %v", filepath.Base(artifactPath), packageName, version)
	}

	return
}

// PackageVersionExists checks the registry index for a published version
func (c *client) PackageVersionExists(ctx context.Context, packageName, version string) (exists bool, err error) {

	url := fmt.Sprintf("%v/%v/%v/json", strings.TrimRight(c.config.Registry.IndexURL, "/"), packageName, version)

	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 10
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	response, err := client.Do(request)
	if err != nil {
		return
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if response.StatusCode != http.StatusOK {
		return false, fmt.Errorf("Checking registry index at %v failed with status code %v", url, response.StatusCode)
	}

	return true, nil
}

func (c *client) uploadArtifact(ctx context.Context, packageName, version, artifactPath string) (err error) {

	// https://warehouse.pypa.io/api-reference/legacy.html
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fields := map[string]string{
		":action":          "file_upload",
		"protocol_version": "1",
		"name":             packageName,
		"version":          version,
		"filetype":         filetypeForArtifact(artifactPath),
	}
	for key, value := range fields {
		if err = writer.WriteField(key, value); err != nil {
			return
		}
	}

	artifactFile, err := os.Open(artifactPath)
	if err != nil {
		return
	}
	defer artifactFile.Close()

	part, err := writer.CreateFormFile("content", filepath.Base(artifactPath))
	if err != nil {
		return
	}
	if _, err = io.Copy(part, artifactFile); err != nil {
		return
	}
	if err = writer.Close(); err != nil {
		return
	}

	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 60
	request, err := http.NewRequest("POST", c.config.Registry.APIURL, &requestBody)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	// add headers, the registry token goes in as basic auth
	request.Header.Add("Content-Type", writer.FormDataContentType())
	request.SetBasicAuth("__token__", c.config.Registry.Token)

	// perform actual request
	response, err := client.Do(request)
	if err != nil {
		return
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return
	}

	switch {
	case response.StatusCode == http.StatusOK || response.StatusCode == http.StatusCreated:
		return nil
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case response.StatusCode == http.StatusConflict:
		return ErrVersionAlreadyPublished
	case response.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(string(body)), "already exists"):
		// pypi's legacy api reports duplicate uploads as a 400
		return ErrVersionAlreadyPublished
	}

	log.Warn().
		Str("url", c.config.Registry.APIURL).
		Str("responseBody", string(body)).
		Msgf("Uploading artifact %v failed with status code %v", filepath.Base(artifactPath), response.StatusCode)

	return fmt.Errorf("Uploading artifact %v to registry failed with status code %v", filepath.Base(artifactPath), response.StatusCode)
}

func filetypeForArtifact(artifactPath string) string {
	if strings.HasSuffix(artifactPath, ".whl") {
		return "bdist_wheel"
	}

	return "sdist"
}
