package registryapi

import (
	"errors"
)

var (
	// ErrVersionAlreadyPublished is returned when the registry already holds the version being uploaded
	ErrVersionAlreadyPublished = errors.New("The version is already published in the registry")
	// ErrUnauthorized is returned when the registry rejects the publish token
	ErrUnauthorized = errors.New("The registry rejected the publish token")
)

// PublishedArtifact represents one artifact file accepted by the registry
type PublishedArtifact struct {
	Filename string
	Package  string
	Version  string
}
