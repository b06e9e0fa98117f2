package releaser

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func getTestContext(body []byte, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("POST", "/api/integrations/github/events", bytes.NewReader(body))
	for key, value := range headers {
		c.Request.Header.Set(key, value)
	}

	return c, recorder
}

func TestHandle(t *testing.T) {

	t.Run("ReturnsBadRequestWhenSignatureIsInvalid", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		c, recorder := getTestContext([]byte(`{"action":"published"}`), map[string]string{
			"X-GitHub-Event":  "release",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, len(releaseEvents))
	})

	t.Run("ReturnsOKWithoutQueueingForNonReleaseEvents", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		c, recorder := getTestContext([]byte(`{"ref":"refs/heads/main"}`), map[string]string{
			"X-GitHub-Event":  "push",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, len(releaseEvents))
	})

	t.Run("QueuesPublishedReleaseEvent", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		body := []byte(`{"action":"published","release":{"tag_name":"2.3.1"},"repository":{"full_name":"estafette/tool"}}`)
		c, recorder := getTestContext(body, map[string]string{
			"X-GitHub-Event":  "release",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, len(releaseEvents))

		queuedEvent := <-releaseEvents
		assert.Equal(t, "2.3.1", queuedEvent.Release.TagName)
		assert.Equal(t, "estafette/tool", queuedEvent.Repository.FullName)
	})

	t.Run("ReturnsOKWithoutQueueingForDraftRelease", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		body := []byte(`{"action":"published","release":{"tag_name":"2.3.1","draft":true},"repository":{"full_name":"estafette/tool"}}`)
		c, recorder := getTestContext(body, map[string]string{
			"X-GitHub-Event":  "release",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, len(releaseEvents))
	})

	t.Run("ReturnsOKWithoutQueueingForUnpublishedAction", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		body := []byte(`{"action":"created","release":{"tag_name":"2.3.1"},"repository":{"full_name":"estafette/tool"}}`)
		c, recorder := getTestContext(body, map[string]string{
			"X-GitHub-Event":  "release",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, len(releaseEvents))
	})

	t.Run("ReturnsBadRequestForMalformedJSONBody", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockService(ctrl)
		service.EXPECT().HasValidSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

		releaseEvents := make(chan githubapi.ReleaseEvent, 1)
		handler := NewHandler(getTestConfig(t.TempDir()), service, releaseEvents)

		c, recorder := getTestContext([]byte(`{"action":`), map[string]string{
			"X-GitHub-Event":  "release",
			"X-Hub-Signature": "sha1=deadbeef",
		})

		// act
		handler.Handle(c)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, len(releaseEvents))
	})
}
