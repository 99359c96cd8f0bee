package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/league-admin/internal/config"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/upstream"
	"github.com/preston-bernstein/league-admin/internal/upstream/fixture"
)

// upstreamFactory assembles the team API with shared logging and metrics.
type upstreamFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newUpstreamFactory(logger *slog.Logger, metrics *metrics.Recorder) upstreamFactory {
	return upstreamFactory{logger: logger, metrics: metrics}
}

func (f upstreamFactory) build(cfg config.UpstreamConfig) upstream.TeamAPI {
	base := selectUpstream(cfg, f.logger)
	return upstream.NewInstrumentedAPI(base, f.logger, f.metrics, upstreamName(cfg.Kind, base))
}

func selectUpstream(cfg config.UpstreamConfig, logger *slog.Logger) upstream.TeamAPI {
	switch cfg.Kind {
	case config.UpstreamHTTP, "":
		return upstream.NewClient(upstream.Config{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	case config.UpstreamFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown upstream, falling back to fixture", slog.String(logging.FieldUpstream, cfg.Kind))
		return fixture.New()
	}
}

// upstreamName keeps the name used in logs and metrics stable, deriving it from the
// instance when not configured.
func upstreamName(raw string, api upstream.TeamAPI) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if api != nil {
		return strings.ToLower(fmt.Sprintf("%T", api))
	}
	return "upstream"
}
