package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/league-admin/internal/logging"
)

// NewBufferLogger returns a text logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Format: "text", Output: &buf})
	return logger, &buf
}
