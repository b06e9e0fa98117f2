package registryapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/stretchr/testify/assert"
)

func getTestClient(registryURL, indexURL string) Client {
	return NewClient(&api.APIConfig{
		Registry: &api.RegistryConfig{
			APIURL:   registryURL,
			IndexURL: indexURL,
			Token:    "pypi-AgEIcHlwaS5vcmc",
		},
	})
}

func writeTestArtifact(t *testing.T, name string) string {
	t.Helper()

	artifactPath := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(artifactPath, []byte("artifact bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	return artifactPath
}

func TestPublishPackage(t *testing.T) {

	t.Run("UploadsEachArtifactAsMultipartFormWithTokenBasicAuth", func(t *testing.T) {

		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++

			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "__token__", username)
			assert.Equal(t, "pypi-AgEIcHlwaS5vcmc", password)

			assert.Nil(t, r.ParseMultipartForm(1 << 20))
			assert.Equal(t, "file_upload", r.FormValue(":action"))
			assert.Equal(t, "tool", r.FormValue("name"))
			assert.Equal(t, "2.3.1", r.FormValue("version"))

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)
		artifactPaths := []string{
			writeTestArtifact(t, "tool-2.3.1-py3-none-any.whl"),
			writeTestArtifact(t, "tool-2.3.1.tar.gz"),
		}

		// act
		artifacts, err := client.PublishPackage(context.Background(), "tool", "2.3.1", artifactPaths)

		assert.Nil(t, err)
		assert.Equal(t, 2, requests)
		assert.Equal(t, 2, len(artifacts))
		assert.Equal(t, "tool-2.3.1-py3-none-any.whl", artifacts[0].Filename)
	})

	t.Run("ReturnsErrVersionAlreadyPublishedForConflictStatus", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)

		// act
		_, err := client.PublishPackage(context.Background(), "tool", "2.3.1", []string{writeTestArtifact(t, "tool-2.3.1.tar.gz")})

		assert.True(t, errors.Is(err, ErrVersionAlreadyPublished))
	})

	t.Run("ReturnsErrVersionAlreadyPublishedForBadRequestSayingFileAlreadyExists", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("400 File already exists. See https://pypi.org/help/#file-name-reuse for more information."))
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)

		// act
		_, err := client.PublishPackage(context.Background(), "tool", "2.3.1", []string{writeTestArtifact(t, "tool-2.3.1.tar.gz")})

		assert.True(t, errors.Is(err, ErrVersionAlreadyPublished))
	})

	t.Run("ReturnsErrUnauthorizedForForbiddenStatus", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)

		// act
		_, err := client.PublishPackage(context.Background(), "tool", "2.3.1", []string{writeTestArtifact(t, "tool-2.3.1.tar.gz")})

		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("ReturnsNoArtifactsForEmptyArtifactSet", func(t *testing.T) {

		client := getTestClient("http://127.0.0.1:0", "http://127.0.0.1:0")

		// act
		artifacts, err := client.PublishPackage(context.Background(), "tool", "2.3.1", []string{})

		assert.Nil(t, err)
		assert.Empty(t, artifacts)
	})
}

func TestPackageVersionExists(t *testing.T) {

	t.Run("ReturnsTrueForOKStatus", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tool/2.3.1/json", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"info":{"name":"tool","version":"2.3.1"}}`))
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)

		// act
		exists, err := client.PackageVersionExists(context.Background(), "tool", "2.3.1")

		assert.Nil(t, err)
		assert.True(t, exists)
	})

	t.Run("ReturnsFalseForNotFoundStatus", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := getTestClient(server.URL, server.URL)

		// act
		exists, err := client.PackageVersionExists(context.Background(), "tool", "2.3.1")

		assert.Nil(t, err)
		assert.False(t, exists)
	})
}

func TestFiletypeForArtifact(t *testing.T) {

	t.Run("ReturnsBdistWheelForWheelFiles", func(t *testing.T) {

		// act
		filetype := filetypeForArtifact("dist/tool-2.3.1-py3-none-any.whl")

		assert.Equal(t, "bdist_wheel", filetype)
	})

	t.Run("ReturnsSdistForAnythingElse", func(t *testing.T) {

		// act
		filetype := filetypeForArtifact("dist/tool-2.3.1.tar.gz")

		assert.Equal(t, "sdist", filetype)
	})
}
