package config

// Config holds runtime configuration for the admin front-end.
type Config struct {
	Port         string
	PageStateTTL Duration
	PageStateMax int
	Upstream     UpstreamConfig
	Session      SessionConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PageStateTTL: durationEnvOrDefault(envPageStateTTL, defaultPageStateTTL),
		PageStateMax: intEnvOrDefault(envPageStateMax, defaultPageStateMax),
		Upstream:     loadUpstream(),
		Session:      loadSession(),
		Log:          loadLog(),
		Metrics:      loadMetrics(),
	}
}
