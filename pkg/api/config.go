package api

import (
	"errors"
	"fmt"
	"strings"
)

// APIConfig represents the configuration for the entire release publisher application
type APIConfig struct {
	Integrations *APIConfigIntegrations `yaml:"integrations,omitempty"`
	APIServer    *APIServerConfig       `yaml:"apiServer,omitempty"`
	Registry     *RegistryConfig        `yaml:"registry,omitempty"`
	Pipeline     *PipelineConfig        `yaml:"pipeline,omitempty"`
}

func (c *APIConfig) SetDefaults() {
	if c.Integrations == nil {
		c.Integrations = &APIConfigIntegrations{}
	}
	c.Integrations.SetDefaults()

	if c.APIServer == nil {
		c.APIServer = &APIServerConfig{}
	}
	c.APIServer.SetDefaults()

	if c.Registry == nil {
		c.Registry = &RegistryConfig{}
	}
	c.Registry.SetDefaults()

	if c.Pipeline == nil {
		c.Pipeline = &PipelineConfig{}
	}
	c.Pipeline.SetDefaults()
}

func (c *APIConfig) Validate() (err error) {
	if c.Integrations == nil || c.Integrations.Github == nil || !c.Integrations.Github.Enable {
		return errors.New("The github integration is required, set integrations.github.enable to true")
	}
	if err = c.Integrations.Github.Validate(); err != nil {
		return
	}
	if err = c.Registry.Validate(); err != nil {
		return
	}
	if err = c.Pipeline.Validate(); err != nil {
		return
	}

	return nil
}

// APIConfigIntegrations groups config sections for the supported integrations
type APIConfigIntegrations struct {
	Github *GithubConfig `yaml:"github,omitempty"`
}

func (c *APIConfigIntegrations) SetDefaults() {
	if c.Github == nil {
		c.Github = &GithubConfig{}
	}
	c.Github.SetDefaults()
}

// GithubConfig configures the github app used for receiving release events and proposing version bumps
type GithubConfig struct {
	Enable         bool   `yaml:"enable"`
	AppID          string `yaml:"appID" env:"GITHUB_APP_ID"`
	PrivateKeyPath string `yaml:"privateKeyPath" env:"GITHUB_APP_PRIVATE_KEY_PATH"`
	WebhookSecret  string `yaml:"webhookSecret" env:"GITHUB_WEBHOOK_SECRET"`
}

func (c *GithubConfig) SetDefaults() {
	if c.PrivateKeyPath == "" {
		c.PrivateKeyPath = "/github-app-key/private-key.pem"
	}
}

func (c *GithubConfig) Validate() (err error) {
	if c.AppID == "" {
		return errors.New("Configuration item integrations.github.appID is required")
	}
	if c.WebhookSecret == "" {
		return errors.New("Configuration item integrations.github.webhookSecret is required")
	}

	return nil
}

// APIServerConfig configures the api server
type APIServerConfig struct {
	ListenAddress string `yaml:"listenAddress"`
	ReadTimeout   int    `yaml:"readTimeoutSeconds"`
	WriteTimeout  int    `yaml:"writeTimeoutSeconds"`
}

func (c *APIServerConfig) SetDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = ":5000"
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 30
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30
	}
}

// RegistryConfig configures the package registry artifacts get published to
type RegistryConfig struct {
	APIURL   string `yaml:"apiURL"`
	IndexURL string `yaml:"indexURL"`
	Token    string `yaml:"token" env:"REGISTRY_PUBLISH_TOKEN"`
}

func (c *RegistryConfig) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://upload.pypi.org/legacy/"
	}
	if c.IndexURL == "" {
		c.IndexURL = "https://pypi.org/pypi"
	}
}

func (c *RegistryConfig) Validate() (err error) {
	if c.Token == "" {
		return errors.New("Configuration item registry.token is required")
	}
	if !strings.HasPrefix(c.APIURL, "https://") && !strings.HasPrefix(c.APIURL, "http://") {
		return fmt.Errorf("Configuration item registry.apiURL with value %v is not a valid url", c.APIURL)
	}

	return nil
}

// PipelineConfig configures how the publish pipeline runs for each release event
type PipelineConfig struct {
	RuntimeVersion         string `yaml:"runtimeVersion"`
	PackagerVersion        string `yaml:"packagerVersion"`
	ManifestFilename       string `yaml:"manifestFilename"`
	ArtifactDir            string `yaml:"artifactDir"`
	WorkDir                string `yaml:"workDir"`
	CloneDepth             int    `yaml:"cloneDepth"`
	TargetBranch           string `yaml:"targetBranch"`
	GitAuthorName          string `yaml:"gitAuthorName"`
	GitAuthorEmail         string `yaml:"gitAuthorEmail"`
	EventChannelBufferSize int    `yaml:"eventChannelBufferSize" env:"EVENT_CHANNEL_BUFFER_SIZE"`
	MaxWorkers             int    `yaml:"maxWorkers" env:"MAX_WORKERS"`
}

func (c *PipelineConfig) SetDefaults() {
	if c.RuntimeVersion == "" {
		c.RuntimeVersion = "3.11"
	}
	if c.ManifestFilename == "" {
		c.ManifestFilename = "pyproject.toml"
	}
	if c.ArtifactDir == "" {
		c.ArtifactDir = "dist"
	}
	if c.WorkDir == "" {
		c.WorkDir = "/tmp/release-publisher"
	}
	if c.CloneDepth <= 0 {
		c.CloneDepth = 50
	}
	if c.TargetBranch == "" {
		c.TargetBranch = "main"
	}
	if c.GitAuthorName == "" {
		c.GitAuthorName = "release-publisher"
	}
	if c.GitAuthorEmail == "" {
		c.GitAuthorEmail = "bot@estafette.io"
	}
	if c.EventChannelBufferSize <= 0 {
		c.EventChannelBufferSize = 100
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = 5
	}
}

func (c *PipelineConfig) Validate() (err error) {
	if c.PackagerVersion == "" {
		return errors.New("Configuration item pipeline.packagerVersion is required, pin the packaging tool version")
	}

	return nil
}
