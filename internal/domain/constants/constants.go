// Package constants holds identifiers shared between configuration and the layers that read it.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers used to carry outbox tasks to the worker.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	// PubSubProviderInline processes tasks in the publishing process instead of handing them off.
	PubSubProviderInline = "inline"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Upload providers
const (
	UploadProviderCloudinary = "cloudinary"
	UploadProviderBlob       = "blob"
)

// Live query feed providers
const (
	LiveQueryProviderLocal = "local"
	LiveQueryProviderRedis = "redis"
)

// Upload folders accepted by the media endpoint.
const (
	FolderCheckIn = "nc_checkin"
	FolderAvatar  = "nc_avatar"
	FolderMenu    = "nc_menu"
)
