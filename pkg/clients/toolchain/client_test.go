package toolchain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/stretchr/testify/assert"
)

func TestWriteCredentials(t *testing.T) {

	t.Run("WritesTokenIntoPypircWithOwnerOnlyPermissions", func(t *testing.T) {

		workDir := t.TempDir()
		client := NewClient(&api.APIConfig{
			Registry: &api.RegistryConfig{
				Token: "pypi-AgEIcHlwaS5vcmc",
			},
		})

		// act
		err := client.WriteCredentials(context.Background(), workDir)

		assert.Nil(t, err)

		pypircPath := filepath.Join(workDir, ".pypirc")
		content, err := os.ReadFile(pypircPath)
		assert.Nil(t, err)
		assert.Contains(t, string(content), "username = __token__")
		assert.Contains(t, string(content), "password = pypi-AgEIcHlwaS5vcmc")

		info, err := os.Stat(pypircPath)
		assert.Nil(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("ReturnsErrorWhenWorkDirDoesNotExist", func(t *testing.T) {

		client := NewClient(&api.APIConfig{
			Registry: &api.RegistryConfig{
				Token: "pypi-AgEIcHlwaS5vcmc",
			},
		})

		// act
		err := client.WriteCredentials(context.Background(), "/does/not/exist")

		assert.NotNil(t, err)
	})
}
