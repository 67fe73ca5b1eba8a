package config

const (
	// ServiceName is the default service name and env prefix root
	ServiceName = "catalog"

	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = "info"

	// DefaultManifestPath is the manifest loaded when none is configured
	DefaultManifestPath = "catalog.manifest.yaml"
)
