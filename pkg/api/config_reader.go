package api

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	yaml "gopkg.in/yaml.v2"
)

// ConfigReader reads the api config from file
type ConfigReader interface {
	ReadConfigFromFile(configPath string) (*APIConfig, error)
}

type configReaderImpl struct {
}

// NewConfigReader returns a new api.ConfigReader
func NewConfigReader() ConfigReader {
	return &configReaderImpl{}
}

// ReadConfigFromFile is used to read configuration from a file set from a configmap
func (h *configReaderImpl) ReadConfigFromFile(configPath string) (config *APIConfig, err error) {

	log.Info().Msgf("Reading %v file...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, err
	}

	// unmarshal into structs
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}

	// override values from envvars
	lookuper := envconfig.PrefixLookuper("RELPUB_", envconfig.OsLookuper())
	if err = envconfig.ProcessWith(context.Background(), config, lookuper); err != nil {
		return
	}

	// fill in all the defaults for empty values
	config.SetDefaults()

	// validate the config
	err = config.Validate()
	if err != nil {
		return
	}

	log.Info().Msgf("Finished reading %v file successfully", configPath)

	return
}
