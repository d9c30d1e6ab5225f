// pkg/dashboard/loader.go
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
	"github.com/David-Botos/consultant-insights/pkg/pipeline"
)

// CandidateQuery selects the candidate columns in model.CandidateColumns order
const CandidateQuery = `
	SELECT c.id, c.title, c.first_name, c.last_name, c.location, c.level_of_seniority,
	       c.created_at, c.rate, c.rate_onsite, p.position AS position,
	       c.nationality, c.send_rate, c.send_rate_onsite, c.cv_link, c.email, c.linkedin, c.description
	FROM candidates AS c
	LEFT JOIN positions AS p ON c.position = p.id
`

// Querier runs a statement and returns its rows
type Querier interface {
	ExecuteQuery(ctx context.Context, query string, params ...interface{}) ([]model.Row, error)
}

// Snapshot is the result of one load
type Snapshot struct {
	RunID    string          `json:"run_id"`
	LoadedAt time.Time       `json:"loaded_at"`
	Views    *pipeline.Views `json:"views"`
}

// Loader fetches candidates and computes the dashboard views
type Loader struct {
	querier  Querier
	pipeline *pipeline.Pipeline
	metrics  *Metrics
	logger   *zap.Logger
}

// NewLoader creates a loader. metrics may be nil.
func NewLoader(querier Querier, metrics *Metrics, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.L()
	}
	return &Loader{
		querier:  querier,
		pipeline: pipeline.New(logger),
		metrics:  metrics,
		logger:   logger.Named("dashboard-loader"),
	}
}

// Load reads a fresh candidate snapshot and derives every view from it
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	runID := uuid.New().String()
	start := time.Now()
	logger := l.logger.With(zap.String("run_id", runID))

	rows, err := l.querier.ExecuteQuery(ctx, CandidateQuery)
	if err != nil {
		l.metrics.observeFailure(err, time.Since(start))
		logger.Error("Failed to load candidates",
			zap.String("kind", apperrors.KindOf(err).String()),
			zap.Error(err))
		return nil, err
	}

	views, err := l.pipeline.Run(rows)
	if err != nil {
		l.metrics.observeFailure(err, time.Since(start))
		logger.Error("Failed to compute dashboard views",
			zap.String("kind", apperrors.KindOf(err).String()),
			zap.Error(err))
		return nil, err
	}

	duration := time.Since(start)
	l.metrics.observeSuccess(views.Candidates.Len(), duration)
	logger.Info("Dashboard loaded",
		zap.Int("candidates", views.Candidates.Len()),
		zap.Duration("duration", duration))

	return &Snapshot{
		RunID:    runID,
		LoadedAt: start.UTC(),
		Views:    views,
	}, nil
}
