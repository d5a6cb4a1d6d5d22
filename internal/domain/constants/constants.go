// Package constants holds provider names and environment identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Key-value storage providers
const (
	StorageProviderBlob     = "blob"
	StorageProviderPostgres = "postgres"
)

// Order-recording providers
const (
	OrderProviderHTTP     = "http"
	OrderProviderPostgres = "postgres"
	OrderProviderMemory   = "memory"
)
