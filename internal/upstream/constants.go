package upstream

import "time"

const (
	defaultBaseURL     = "http://localhost:3333"
	defaultHTTPTimeout = 10 * time.Second
	teamPath           = "/team"
	maxErrorBody       = 512
)

// Operation names used in logs and metrics.
const (
	OpList   = "list"
	OpCreate = "create"
	OpDelete = "delete"
)
