package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Client provisions the pinned runtime and packaging tool and produces the artifact set
//
//go:generate mockgen -package=toolchain -destination ./mock.go -source=client.go
type Client interface {
	ProvisionRuntime(ctx context.Context) (err error)
	ProvisionPackager(ctx context.Context) (err error)
	WriteCredentials(ctx context.Context, workDir string) (err error)
	Build(ctx context.Context, workDir string) (artifactPaths []string, err error)
}

// NewClient creates a toolchain.Client running the packaging tool on the local host
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// ProvisionRuntime verifies the pinned interpreter version is available; a missing or
// mismatching interpreter is a fatal environment error, not a data error
func (c *client) ProvisionRuntime(ctx context.Context) (err error) {

	output, err := c.runCommand(ctx, "", "python3", "--version")
	if err != nil {
		return errors.Wrap(err, "The pinned runtime is not available on this host")
	}

	// python3 --version prints `Python <version>`
	reportedVersion := strings.TrimSpace(strings.TrimPrefix(output, "Python "))
	if !strings.HasPrefix(reportedVersion, c.config.Pipeline.RuntimeVersion) {
		return fmt.Errorf("The available runtime version %v does not match pinned version %v", reportedVersion, c.config.Pipeline.RuntimeVersion)
	}

	log.Debug().Msgf("Runtime version %v matches pinned version %v", reportedVersion, c.config.Pipeline.RuntimeVersion)

	return nil
}

// ProvisionPackager installs the pinned packaging tool version; rerunning is safe,
// pip treats an already installed matching version as a no-op
func (c *client) ProvisionPackager(ctx context.Context) (err error) {

	_, err = c.runCommand(ctx, "", "python3", "-m", "pip", "install", "--quiet", fmt.Sprintf("poetry==%v", c.config.Pipeline.PackagerVersion))
	if err != nil {
		return errors.Wrapf(err, "Installing packaging tool version %v failed", c.config.Pipeline.PackagerVersion)
	}

	return nil
}

// WriteCredentials stages the registry publish token in the packaging tool's configuration
// for this run; the token is not validated here, an invalid token only surfaces at publish
func (c *client) WriteCredentials(ctx context.Context, workDir string) (err error) {

	pypirc := fmt.Sprintf("[pypi]\nusername = __token__\npassword = %v\n", c.config.Registry.Token)

	return os.WriteFile(filepath.Join(workDir, ".pypirc"), []byte(pypirc), 0600)
}

// Build produces the artifact set from source; the returned paths are ordered by filename
// and may be empty when the build produces nothing
func (c *client) Build(ctx context.Context, workDir string) (artifactPaths []string, err error) {

	_, err = c.runCommand(ctx, workDir, "python3", "-m", "poetry", "build")
	if err != nil {
		return artifactPaths, errors.Wrap(err, "Building artifacts failed")
	}

	artifactDir := filepath.Join(workDir, c.config.Pipeline.ArtifactDir)
	entries, err := os.ReadDir(artifactDir)
	if err != nil {
		if os.IsNotExist(err) {
			// no artifact dir means an empty artifact set, not an error
			return []string{}, nil
		}
		return artifactPaths, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		artifactPaths = append(artifactPaths, filepath.Join(artifactDir, entry.Name()))
	}
	sort.Strings(artifactPaths)

	log.Debug().Msgf("Build produced %v artifacts in %v", len(artifactPaths), artifactDir)

	return artifactPaths, nil
}

func (c *client) runCommand(ctx context.Context, dir, name string, args ...string) (output string, err error) {

	command := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		command.Dir = dir
	}

	outputBytes, err := command.CombinedOutput()
	output = string(outputBytes)
	if err != nil {
		log.Warn().
			Str("command", fmt.Sprintf("%v %v", name, strings.Join(args, " "))).
			Str("output", output).
			Msg("Command failed")

		return output, errors.Wrapf(err, "Command %v failed", name)
	}

	return output, nil
}
