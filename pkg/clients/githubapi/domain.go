package githubapi

import (
	"fmt"
	"strings"
)

const repoSource = "github.com"

// AnyEvent represents any of the Github webhook events, to inspect action and installation before full decoding
type AnyEvent struct {
	Action       string             `json:"action"`
	Installation GithubInstallation `json:"installation"`
	Repository   *Repository        `json:"repository"`
}

// ReleaseEvent represents a Github webhook release event
type ReleaseEvent struct {
	Action       string             `json:"action"`
	Release      Release            `json:"release"`
	Repository   Repository         `json:"repository"`
	Installation GithubInstallation `json:"installation"`
}

func (re *ReleaseEvent) GetRepoSource() string {
	return repoSource
}

func (re *ReleaseEvent) GetRepoOwner() string {
	return strings.Split(re.Repository.FullName, "/")[0]
}

func (re *ReleaseEvent) GetRepoName() string {
	return re.Repository.Name
}

func (re *ReleaseEvent) GetRepoFullName() string {
	return re.Repository.FullName
}

// Release represents the published release the event carries
type Release struct {
	ID         int64  `json:"id"`
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	HTMLURL    string `json:"html_url"`
	UploadURL  string `json:"upload_url"`
}

// GetUploadURL strips the uri template suffix github puts on upload_url
func (r *Release) GetUploadURL(assetName string) string {
	url := r.UploadURL
	if idx := strings.Index(url, "{"); idx > 0 {
		url = url[:idx]
	}

	return fmt.Sprintf("%v?name=%v", url, assetName)
}

// GithubInstallation represents an installation of a Github app
type GithubInstallation struct {
	ID    int `json:"id"`
	AppID int `json:"app_id,omitempty"`
}

// Repository represents a Github repository
type Repository struct {
	GitURL        string `json:"git_url"`
	HTMLURL       string `json:"html_url"`
	CloneURL      string `json:"clone_url"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
}

// AccessToken represents a Github access token
type AccessToken struct {
	ExpiresAt string `json:"expires_at"`
	Token     string `json:"token"`
}

// ReleaseAsset represents a file attached to a release entry
type ReleaseAsset struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
	URL   string `json:"browser_download_url"`
}

// PullRequest represents an opened pull request
type PullRequest struct {
	ID      int64  `json:"id"`
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	State   string `json:"state"`
}
