// Package constants defines shared environment and provider identifiers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selectors.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Realtime provider selectors.
const (
	RealtimeProviderNoop     = "noop"
	RealtimeProviderFirebase = "firebase"
)
