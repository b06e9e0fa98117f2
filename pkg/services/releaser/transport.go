package releaser

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/estafette/estafette-release-publisher/pkg/api"
	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewHandler returns a Handler receiving github webhook events
func NewHandler(config *api.APIConfig, service Service, releaseEvents chan<- githubapi.ReleaseEvent) Handler {
	return Handler{
		config:        config,
		service:       service,
		releaseEvents: releaseEvents,
	}
}

type Handler struct {
	config        *api.APIConfig
	service       Service
	releaseEvents chan<- githubapi.ReleaseEvent
}

func (h *Handler) Handle(c *gin.Context) {

	// https://developer.github.com/webhooks/
	eventType := c.GetHeader("X-GitHub-Event")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Err(err).Msg("Reading body from Github webhook failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	// verify hmac signature
	hasValidSignature, err := h.service.HasValidSignature(c.Request.Context(), body, c.GetHeader("X-Hub-Signature"))
	if err != nil {
		log.Error().Err(err).Msg("Verifying signature from Github webhook failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	if !hasValidSignature {
		log.Error().Msg("Signature from Github webhook is invalid")
		c.Status(http.StatusBadRequest)
		return
	}

	if eventType != "release" {
		log.Debug().Str("event", eventType).Msgf("Ignoring Github webhook event of type '%v'", eventType)
		c.Status(http.StatusOK)
		return
	}

	// unmarshal json body
	var releaseEvent githubapi.ReleaseEvent
	err = json.Unmarshal(body, &releaseEvent)
	if err != nil {
		log.Error().Err(err).Str("body", string(body)).Msg("Deserializing body to GithubReleaseEvent failed")
		c.Status(http.StatusBadRequest)
		return
	}

	// only a published, non-draft release triggers a publish run
	if releaseEvent.Action != "published" || releaseEvent.Release.Draft {
		log.Debug().
			Str("action", releaseEvent.Action).
			Msgf("Ignoring release event with action '%v' for repository %v", releaseEvent.Action, releaseEvent.GetRepoFullName())
		c.Status(http.StatusOK)
		return
	}

	log.Info().
		Str("tag", releaseEvent.Release.TagName).
		Msgf("Queueing publish run for release %v of repository %v", releaseEvent.Release.TagName, releaseEvent.GetRepoFullName())

	h.releaseEvents <- releaseEvent

	c.Status(http.StatusOK)
}
