package config

// Default ports
const (
	DefaultGRPCPort = 50051
	DefaultHTTPPort = 9090
)

// Environment variable names
const (
	EnvGRPCPort        = "SIM_CATALOG_GRPC_PORT"
	EnvHTTPPort        = "SIM_CATALOG_HTTP_PORT"
	EnvShutdownTimeout = "SIM_CATALOG_SHUTDOWN_TIMEOUT"

	EnvSnapshotSource      = "SIM_CATALOG_SNAPSHOT_SOURCE"
	EnvSnapshotEncoding    = "SIM_CATALOG_SNAPSHOT_ENCODING"
	EnvSnapshotLoadTimeout = "SIM_CATALOG_SNAPSHOT_LOAD_TIMEOUT"
	EnvSnapshotStrictIDs   = "SIM_CATALOG_SNAPSHOT_STRICT_IDS"
	EnvSnapshotPreload     = "SIM_CATALOG_SNAPSHOT_PRELOAD"

	EnvRedisEndpoints = "SIM_CATALOG_REDIS_ENDPOINTS"
	EnvRedisPassword  = "SIM_CATALOG_REDIS_PASSWORD"
	EnvRedisDB        = "SIM_CATALOG_REDIS_DB"
	EnvRedisTLS       = "SIM_CATALOG_REDIS_TLS"
	EnvRedisTTL       = "SIM_CATALOG_REDIS_TTL"

	EnvLogLevel  = "SIM_CATALOG_LOG_LEVEL"
	EnvLogFormat = "SIM_CATALOG_LOG_FORMAT"
)
