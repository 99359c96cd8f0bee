package config

// Upstream kinds understood by the server wiring.
const (
	UpstreamHTTP    = "http"
	UpstreamFixture = "fixture"
)

// UpstreamConfig controls how we talk to the league API.
type UpstreamConfig struct {
	Kind    string
	BaseURL string
	Timeout Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Kind:    lowerEnvOrDefault(envUpstream, defaultUpstream),
		BaseURL: envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout: durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
	}
}
