// Package constants holds shared cross-layer constant values.
package constants

const (
	// EnvDevelop names the development environment.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
