// pkg/pipeline/pipeline.go

// Package pipeline turns raw candidate rows into the dashboard's derived views.
// Every view is recomputed from the rows passed in; nothing is retained
// between runs.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/David-Botos/consultant-insights/pkg/converter"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

// Views is everything a rendering layer needs for one dashboard
type Views struct {
	Columns           []model.ColumnSpec       `json:"columns"`
	Candidates        *model.Frame             `json:"candidates"`
	LocationCounts    []model.LocationCount    `json:"location_counts"`
	NationalityCounts []model.NationalityCount `json:"nationality_counts"`
	TitleStatistics   []model.TitleStatistics  `json:"title_statistics"`
	Correlation       model.CorrelationMatrix  `json:"correlation"`
	WeeklyCohorts     []model.WeeklyCohort     `json:"weekly_cohorts"`
	Scatter           []model.ScatterPoint     `json:"scatter"`
}

// Pipeline binds, decodes and aggregates candidate rows
type Pipeline struct {
	converter *converter.TypeConverter
	logger    *zap.Logger
}

// New creates a pipeline using the default type conversion settings
func New(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.L()
	}
	return &Pipeline{
		converter: converter.NewTypeConverter(logger),
		logger:    logger.Named("pipeline"),
	}
}

// Run computes all views for rows
func (p *Pipeline) Run(rows []model.Row) (*Views, error) {
	frame, err := Bind(rows)
	if err != nil {
		return nil, err
	}

	candidates, err := p.converter.DecodeCandidates(frame)
	if err != nil {
		return nil, err
	}

	weekly, undated := WeeklyCohorts(candidates)
	if undated > 0 {
		p.logger.Warn("Candidates without creation time left out of weekly cohorts",
			zap.Int("count", undated))
	}

	views := &Views{
		Columns:           model.CandidateColumns,
		Candidates:        frame,
		LocationCounts:    LocationCounts(candidates),
		NationalityCounts: NationalityCounts(candidates),
		TitleStatistics:   TitleStatisticsByTitle(candidates),
		Correlation:       Correlation(candidates),
		WeeklyCohorts:     weekly,
		Scatter:           ScatterPoints(candidates),
	}

	p.logger.Info("Pipeline completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("locations", len(views.LocationCounts)),
		zap.Int("titles", len(views.TitleStatistics)),
		zap.Int("weeks", len(views.WeeklyCohorts)))

	return views, nil
}
