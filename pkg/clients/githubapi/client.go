package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/golang-jwt/jwt/v4"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with the github api
//
//go:generate mockgen -package=githubapi -destination ./mock.go -source=client.go
type Client interface {
	GetGithubAppToken(ctx context.Context) (token string, err error)
	GetInstallationToken(ctx context.Context, installationID int) (accessToken AccessToken, err error)
	GetAuthenticatedRepositoryURL(accessToken AccessToken, htmlURL string) (url string, err error)
	UploadReleaseAsset(ctx context.Context, accessToken AccessToken, event ReleaseEvent, assetPath string) (asset ReleaseAsset, err error)
	CreatePullRequest(ctx context.Context, accessToken AccessToken, event ReleaseEvent, head, base, title, body string) (pullRequest PullRequest, err error)
}

// NewClient creates a githubapi.Client to communicate with the Github api
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// GetGithubAppToken returns a Github app token with which to retrieve an installation token
func (c *client) GetGithubAppToken(ctx context.Context) (githubAppToken string, err error) {

	// https://developer.github.com/apps/building-integrations/setting-up-and-registering-github-apps/about-authentication-options-for-github-apps/

	// load private key from pem file
	pemFileByteArray, err := os.ReadFile(c.config.Integrations.Github.PrivateKeyPath)
	if err != nil {
		return
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemFileByteArray)
	if err != nil {
		return
	}

	// create a new token object, specifying signing method and the claims you would like it to contain.
	epoch := time.Now().Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		// issued at time
		"iat": epoch,
		// JWT expiration time (10 minute maximum)
		"exp": epoch + 500,
		// GitHub App's identifier
		"iss": c.config.Integrations.Github.AppID,
	})

	// sign and get the complete encoded token as a string using the private key
	githubAppToken, err = token.SignedString(privateKey)
	if err != nil {
		return
	}

	return
}

// GetInstallationToken returns an access token for an installation of a Github app
func (c *client) GetInstallationToken(ctx context.Context, installationID int) (accessToken AccessToken, err error) {

	githubAppToken, err := c.GetGithubAppToken(ctx)
	if err != nil {
		return
	}

	statusCode, body, err := c.callGithubAPI(ctx, "POST", fmt.Sprintf("https://api.github.com/app/installations/%v/access_tokens", installationID), nil, "Bearer", githubAppToken)
	if err != nil {
		return
	}
	if statusCode != http.StatusCreated {
		return accessToken, fmt.Errorf("Retrieving installation token for installation %v failed with status code %v", installationID, statusCode)
	}

	// unmarshal json body
	err = json.Unmarshal(body, &accessToken)
	if err != nil {
		return
	}

	return
}

// GetAuthenticatedRepositoryURL returns a repository url with a token embedded, for cloning and pushing
func (c *client) GetAuthenticatedRepositoryURL(accessToken AccessToken, htmlURL string) (url string, err error) {

	url = fmt.Sprintf("https://x-access-token:%v@%v", accessToken.Token, stripScheme(htmlURL))

	return
}

// UploadReleaseAsset attaches one built artifact as a downloadable asset on the originating release entry
func (c *client) UploadReleaseAsset(ctx context.Context, accessToken AccessToken, event ReleaseEvent, assetPath string) (asset ReleaseAsset, err error) {

	// https://docs.github.com/en/rest/releases/assets#upload-a-release-asset

	assetFile, err := os.Open(assetPath)
	if err != nil {
		return
	}
	defer assetFile.Close()

	info, err := assetFile.Stat()
	if err != nil {
		return
	}

	url := event.Release.GetUploadURL(info.Name())

	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 60
	request, err := http.NewRequest("POST", url, assetFile)
	if err != nil {
		return
	}
	request.ContentLength = info.Size()

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	// add headers
	request.Header.Add("Authorization", fmt.Sprintf("token %v", accessToken.Token))
	request.Header.Add("Content-Type", "application/octet-stream")

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

	if response.StatusCode != http.StatusCreated {
		return asset, fmt.Errorf("Uploading release asset %v to %v failed with status code %v", info.Name(), url, response.StatusCode)
	}

	// unmarshal json body
	err = json.Unmarshal(body, &asset)
	if err != nil {
		log.Warn().Err(err).Str("body", string(body)).Msgf("Failed unmarshalling response for asset upload to %v", url)
		return
	}

	return
}

// CreatePullRequest opens a pull request from head to base on the repository the event fired for
func (c *client) CreatePullRequest(ctx context.Context, accessToken AccessToken, event ReleaseEvent, head, base, title, body string) (pullRequest PullRequest, err error) {

	// https://docs.github.com/en/rest/pulls/pulls#create-a-pull-request

	url := fmt.Sprintf("https://api.github.com/repos/%v/pulls", event.Repository.FullName)

	params := struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Head  string `json:"head"`
		Base  string `json:"base"`
	}{
		Title: title,
		Body:  body,
		Head:  head,
		Base:  base,
	}

	statusCode, responseBody, err := c.callGithubAPI(ctx, "POST", url, params, "token", accessToken.Token)
	if err != nil {
		return
	}
	if statusCode != http.StatusCreated {
		return pullRequest, fmt.Errorf("Creating pull request for %v from %v to %v failed with status code %v", event.Repository.FullName, head, base, statusCode)
	}

	// unmarshal json body
	err = json.Unmarshal(responseBody, &pullRequest)
	if err != nil {
		return
	}

	return
}

func (c *client) callGithubAPI(ctx context.Context, method, url string, params interface{}, authorizationType, token string) (statusCode int, body []byte, err error) {

	// convert params to json if they're present
	var requestBody io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return 0, body, err
		}
		requestBody = bytes.NewReader(data)
	}

	// create client, in order to add headers
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Second * 10
	request, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// add tracing context
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	// add headers
	request.Header.Add("Authorization", fmt.Sprintf("%v %v", authorizationType, token))
	request.Header.Add("Accept", "application/vnd.github.machine-man-preview+json")

	// perform actual request
	response, err := client.Do(request)
	if err != nil {
		return
	}

	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	statusCode = response.StatusCode

	body, err = io.ReadAll(response.Body)
	if err != nil {
		return
	}

	return
}

func stripScheme(url string) string {
	if idx := len("https://"); len(url) > idx && url[:idx] == "https://" {
		return url[idx:]
	}
	if idx := len("http://"); len(url) > idx && url[:idx] == "http://" {
		return url[idx:]
	}

	return url
}
