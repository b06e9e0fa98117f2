package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromFile(t *testing.T) {

	t.Run("ReturnsConfigWithoutErrors", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		_, err := configReader.ReadConfigFromFile("configs/config.yaml")

		assert.Nil(t, err)
	})

	t.Run("ReturnsGithubConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("configs/config.yaml")

		assert.Nil(t, err)
		assert.True(t, config.Integrations.Github.Enable)
		assert.Equal(t, "15", config.Integrations.Github.AppID)
		assert.Equal(t, "m4g1c", config.Integrations.Github.WebhookSecret)
	})

	t.Run("ReturnsRegistryConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("configs/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, "https://upload.pypi.org/legacy/", config.Registry.APIURL)
		assert.Equal(t, "pypi-AgEIcHlwaS5vcmc", config.Registry.Token)
	})

	t.Run("ReturnsPipelineConfig", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("configs/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, "3.11", config.Pipeline.RuntimeVersion)
		assert.Equal(t, "1.8.3", config.Pipeline.PackagerVersion)
		assert.Equal(t, "pyproject.toml", config.Pipeline.ManifestFilename)
		assert.Equal(t, 5, config.Pipeline.MaxWorkers)
	})

	t.Run("OverridesTokenFromEnvironmentVariable", func(t *testing.T) {

		t.Setenv("RELPUB_REGISTRY_PUBLISH_TOKEN", "pypi-overridden")

		configReader := NewConfigReader()

		// act
		config, err := configReader.ReadConfigFromFile("configs/config.yaml")

		assert.Nil(t, err)
		assert.Equal(t, "pypi-overridden", config.Registry.Token)
	})

	t.Run("ReturnsErrorForMissingFile", func(t *testing.T) {

		configReader := NewConfigReader()

		// act
		_, err := configReader.ReadConfigFromFile("configs/does-not-exist.yaml")

		assert.NotNil(t, err)
	})
}

func TestAPIConfigValidate(t *testing.T) {

	t.Run("ReturnsErrorWhenGithubIntegrationIsDisabled", func(t *testing.T) {

		config := &APIConfig{}
		config.SetDefaults()

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorWhenPackagerVersionIsNotPinned", func(t *testing.T) {

		config := &APIConfig{
			Integrations: &APIConfigIntegrations{
				Github: &GithubConfig{
					Enable:        true,
					AppID:         "15",
					WebhookSecret: "m4g1c",
				},
			},
			Registry: &RegistryConfig{
				Token: "pypi-AgEIcHlwaS5vcmc",
			},
		}
		config.SetDefaults()

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("SetDefaultsFillsPipelineDefaults", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.Equal(t, "pyproject.toml", config.Pipeline.ManifestFilename)
		assert.Equal(t, "dist", config.Pipeline.ArtifactDir)
		assert.Equal(t, "main", config.Pipeline.TargetBranch)
		assert.Equal(t, 100, config.Pipeline.EventChannelBufferSize)
	})
}
