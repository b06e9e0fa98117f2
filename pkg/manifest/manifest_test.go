package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeManifest(t *testing.T, filename, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(path, []byte(content), 0600)
	assert.Nil(t, err)

	return path
}

func TestReadFromFile(t *testing.T) {

	t.Run("ReadsNameAndVersionFromTomlManifest", func(t *testing.T) {

		path := writeManifest(t, "pyproject.toml", "[tool.poetry]\nname = \"philoch-bib-sdk\"\nversion = \"0.1.0\"\n")

		// act
		m, err := ReadFromFile(path)

		assert.Nil(t, err)
		assert.Equal(t, "philoch-bib-sdk", m.Name)
		assert.Equal(t, "0.1.0", m.Version)
	})

	t.Run("ReadsNameAndVersionFromYamlManifest", func(t *testing.T) {

		path := writeManifest(t, "package.yaml", "name: my-package\nversion: 0.4.2\n")

		// act
		m, err := ReadFromFile(path)

		assert.Nil(t, err)
		assert.Equal(t, "my-package", m.Name)
		assert.Equal(t, "0.4.2", m.Version)
	})

	t.Run("ReturnsErrorIfNameIsMissing", func(t *testing.T) {

		path := writeManifest(t, "pyproject.toml", "[tool.poetry]\nversion = \"0.1.0\"\n")

		// act
		_, err := ReadFromFile(path)

		assert.NotNil(t, err)
	})
}

func TestRewriteVersion(t *testing.T) {

	t.Run("RewritesVersionFieldInTomlManifest", func(t *testing.T) {

		path := writeManifest(t, "pyproject.toml", "[tool.poetry]\nname = \"philoch-bib-sdk\"\nversion = \"0.1.0\"\ndescription = \"bibliography sdk\"\n")

		// act
		err := RewriteVersion(path, "2.3.1")

		assert.Nil(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "[tool.poetry]\nname = \"philoch-bib-sdk\"\nversion = \"2.3.1\"\ndescription = \"bibliography sdk\"\n", string(data))
	})

	t.Run("RewritesVersionFieldInYamlManifest", func(t *testing.T) {

		path := writeManifest(t, "package.yaml", "name: my-package\nversion: 0.4.2\n")

		// act
		err := RewriteVersion(path, "0.5.0")

		assert.Nil(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "name: my-package\nversion: 0.5.0\n", string(data))
	})

	t.Run("LeavesLaterVersionFieldsUntouched", func(t *testing.T) {

		path := writeManifest(t, "pyproject.toml", "name = \"pkg\"\nversion = \"0.1.0\"\n\n[tool.poetry.dependencies.attrs]\nversion = \"23.1.0\"\n")

		// act
		err := RewriteVersion(path, "1.0.0")

		assert.Nil(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "name = \"pkg\"\nversion = \"1.0.0\"\n\n[tool.poetry.dependencies.attrs]\nversion = \"23.1.0\"\n", string(data))
	})

	t.Run("WritesNonSemverTagVerbatim", func(t *testing.T) {

		// tag format is not validated, an invalid tag propagates into the manifest
		path := writeManifest(t, "pyproject.toml", "name = \"pkg\"\nversion = \"0.1.0\"\n")

		// act
		err := RewriteVersion(path, "not-a-version")

		assert.Nil(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "name = \"pkg\"\nversion = \"not-a-version\"\n", string(data))
	})

	t.Run("ReturnsErrorIfManifestHasNoVersionField", func(t *testing.T) {

		path := writeManifest(t, "pyproject.toml", "name = \"pkg\"\n")

		// act
		err := RewriteVersion(path, "1.0.0")

		assert.NotNil(t, err)
	})
}
