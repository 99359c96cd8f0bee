package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-admin/internal/domain/teams"
	"github.com/preston-bernstein/league-admin/internal/logging"
	"github.com/preston-bernstein/league-admin/internal/metrics"
)

// instrumentedAPI decorates a TeamAPI with logging and metrics. It never retries.
type instrumentedAPI struct {
	inner   TeamAPI
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedAPI wraps inner so each call is timed, counted, and logged under the given upstream name.
func NewInstrumentedAPI(inner TeamAPI, logger *slog.Logger, recorder *metrics.Recorder, name string) TeamAPI {
	return &instrumentedAPI{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (a *instrumentedAPI) ListTeams(ctx context.Context, token string) ([]teams.Record, error) {
	start := a.now()
	records, err := a.inner.ListTeams(ctx, token)
	a.observe(ctx, OpList, start, err, slog.Int(logging.FieldCount, len(records)))
	return records, err
}

func (a *instrumentedAPI) CreateTeam(ctx context.Context, token, name string) (Created, error) {
	start := a.now()
	created, err := a.inner.CreateTeam(ctx, token, name)
	a.observe(ctx, OpCreate, start, err, slog.Int64(logging.FieldTeamID, created.Team.ID))
	return created, err
}

func (a *instrumentedAPI) DeleteTeam(ctx context.Context, token string, id int64) (string, error) {
	start := a.now()
	msg, err := a.inner.DeleteTeam(ctx, token, id)
	a.observe(ctx, OpDelete, start, err, slog.Int64(logging.FieldTeamID, id))
	return msg, err
}

func (a *instrumentedAPI) observe(ctx context.Context, op string, start time.Time, err error, extra slog.Attr) {
	elapsed := a.now().Sub(start)
	if a.metrics != nil {
		a.metrics.RecordUpstreamCall(op, elapsed, err)
	}

	logger := logging.FromContext(ctx, a.logger)
	if logger == nil {
		return
	}
	args := []any{
		slog.String(logging.FieldUpstream, a.name),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok {
			args = append(args, slog.Int(logging.FieldStatusCode, apiErr.StatusCode))
		}
		logging.Warn(logger, "upstream call failed", append(args, "error", err)...)
		return
	}
	logging.Debug(logger, "upstream call complete", append(args, extra)...)
}
