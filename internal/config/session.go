package config

// SessionConfig describes where the session token comes from and where
// unauthenticated visitors are sent.
type SessionConfig struct {
	CookieName  string
	StaticToken string // development only; overrides the cookie when set
	LandingPath string
}

func loadSession() SessionConfig {
	return SessionConfig{
		CookieName:  envOrDefault(envSessionName, defaultSessionName),
		StaticToken: envOrDefault(envSessionToken, ""),
		LandingPath: envOrDefault(envLandingPath, defaultLandingPath),
	}
}
