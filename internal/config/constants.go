package config

import "time"

const (
	envPort         = "PORT"
	envPageStateTTL = "PAGE_STATE_TTL"
	envPageStateMax = "PAGE_STATE_MAX"
	envUpstream     = "UPSTREAM"
	envAPIBaseURL   = "API_BASE_URL"
	envAPITimeout   = "API_TIMEOUT"
	envSessionName  = "SESSION_COOKIE"
	envSessionToken = "SESSION_TOKEN"
	envLandingPath  = "LANDING_PATH"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Idle pages are pruned after this long; a later mutation on them falls back to a fresh load.
	defaultPageStateTTL = 30 * Duration(time.Minute)
	// Oldest page states are evicted beyond this many, bounding memory under reload loops.
	defaultPageStateMax = 10000
	defaultUpstream     = UpstreamHTTP
	defaultAPIBaseURL   = "http://localhost:3333"
	defaultAPITimeout   = 10 * Duration(time.Second)
	defaultSessionName  = "league_session"
	defaultLandingPath  = "/"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "league-admin"
)
