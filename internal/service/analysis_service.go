package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/analysis"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/llm"
	"github.com/blaisecz/sleep-analysis/internal/provider"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultLookbackDays is the stored-data window when a request names none.
	DefaultLookbackDays = 90
)

// UserQuery selects the stored records an analysis runs on. Nil bounds
// default to the lookback window ending today.
type UserQuery struct {
	From       *domain.Date
	To         *domain.Date
	WindowDays int
}

// AnalysisService runs the engine over request batches or stored records.
type AnalysisService interface {
	// AnalyzeBatch runs every analyzer over a caller-supplied batch.
	AnalyzeBatch(ctx context.Context, batch domain.RecordBatch, opts analysis.Options) (*domain.ComprehensiveAnalysis, error)
	// AnalyzeBatchSection runs one analyzer over a caller-supplied batch.
	AnalyzeBatchSection(ctx context.Context, batch domain.RecordBatch, section analysis.Section, opts analysis.Options) (any, error)
	// AnalyzeUser runs every analyzer over a user's stored records.
	AnalyzeUser(ctx context.Context, userID uuid.UUID, q UserQuery) (*domain.UserAnalysisResponse, error)
	// AnalyzeUserSection runs one analyzer over a user's stored records.
	AnalyzeUserSection(ctx context.Context, userID uuid.UUID, section analysis.Section, q UserQuery) (any, error)
	// Insights analyzes a user's stored records and narrates the result.
	Insights(ctx context.Context, userID uuid.UUID, q UserQuery) (*domain.InsightsResponse, error)
}

type analysisService struct {
	data            provider.DataProvider
	feedback        provider.FeedbackStore
	llmClient       llm.InsightsLLM
	log             *logrus.Logger
	trendWindowDays int
	lookbackDays    int
	now             func() time.Time
}

// AnalysisConfig carries the window defaults of an AnalysisService.
type AnalysisConfig struct {
	TrendWindowDays int
	LookbackDays    int
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(
	data provider.DataProvider,
	feedback provider.FeedbackStore,
	llmClient llm.InsightsLLM,
	log *logrus.Logger,
	cfg AnalysisConfig,
) AnalysisService {
	if cfg.TrendWindowDays <= 0 {
		cfg.TrendWindowDays = analysis.DefaultTrendWindowDays
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	return &analysisService{
		data:            data,
		feedback:        feedback,
		llmClient:       llmClient,
		log:             log,
		trendWindowDays: cfg.TrendWindowDays,
		lookbackDays:    cfg.LookbackDays,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *analysisService) AnalyzeBatch(ctx context.Context, batch domain.RecordBatch, opts analysis.Options) (*domain.ComprehensiveAnalysis, error) {
	ds, err := s.load(ctx, batch)
	if err != nil {
		return nil, err
	}
	result := s.comprehensive(ctx, ds, s.withDefaults(opts))
	return &result, nil
}

func (s *analysisService) AnalyzeBatchSection(ctx context.Context, batch domain.RecordBatch, section analysis.Section, opts analysis.Options) (any, error) {
	ds, err := s.load(ctx, batch)
	if err != nil {
		return nil, err
	}
	return analysis.Run(ds, section, s.withDefaults(opts))
}

func (s *analysisService) AnalyzeUser(ctx context.Context, userID uuid.UUID, q UserQuery) (*domain.UserAnalysisResponse, error) {
	window, ds, opts, err := s.loadUser(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return &domain.UserAnalysisResponse{
		Window:                window,
		ComprehensiveAnalysis: s.comprehensive(ctx, ds, opts),
	}, nil
}

func (s *analysisService) AnalyzeUserSection(ctx context.Context, userID uuid.UUID, section analysis.Section, q UserQuery) (any, error) {
	_, ds, opts, err := s.loadUser(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return analysis.Run(ds, section, opts)
}

func (s *analysisService) Insights(ctx context.Context, userID uuid.UUID, q UserQuery) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("sleep-analysis-api/insights")
	ctx, span := tracer.Start(ctx, "AnalysisService.Insights",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	window, ds, opts, err := s.loadUser(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	result := s.comprehensive(ctx, ds, opts)

	narrative, err := s.llmClient.GenerateInsights(ctx, window, &result)
	if err != nil {
		span.RecordError(err)
		s.log.WithError(err).WithField("user_id", userID).Warn("insights generation failed")
		return nil, err
	}

	return &domain.InsightsResponse{
		Window:   window,
		Analysis: result,
		Insights: *narrative,
	}, nil
}

func (s *analysisService) load(ctx context.Context, batch domain.RecordBatch) (*analysis.Dataset, error) {
	_, span := otel.Tracer("sleep-analysis-api/analysis").Start(ctx, "analysis.Load",
		trace.WithAttributes(
			attribute.Int("records.sleep", len(batch.Sleep)),
			attribute.Int("records.activity", len(batch.Activity)),
			attribute.Int("records.stress", len(batch.Stress)),
			attribute.Int("records.feedback", len(batch.Feedback)),
		),
	)
	defer span.End()

	ds, err := analysis.Load(batch)
	if err != nil {
		span.RecordError(err)
		s.log.WithError(err).Debug("rejected malformed batch")
		return nil, err
	}
	return ds, nil
}

// loadUser resolves the query window, fetches the user's records and loads them.
func (s *analysisService) loadUser(ctx context.Context, userID uuid.UUID, q UserQuery) (domain.AnalysisWindow, *analysis.Dataset, analysis.Options, error) {
	window, err := s.resolveWindow(q)
	if err != nil {
		return domain.AnalysisWindow{}, nil, analysis.Options{}, err
	}

	batch, err := provider.Collect(ctx, s.data, s.feedback, userID, window.From, window.To)
	if err != nil {
		return domain.AnalysisWindow{}, nil, analysis.Options{}, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"from":    window.From.String(),
		"to":      window.To.String(),
		"nights":  len(batch.Sleep),
	}).Debug("fetched records for analysis")

	ds, err := s.load(ctx, *batch)
	if err != nil {
		return domain.AnalysisWindow{}, nil, analysis.Options{}, err
	}

	opts := s.withDefaults(analysis.Options{WindowDays: q.WindowDays, Now: s.referenceTime(window.To)})
	return window, ds, opts, nil
}

func (s *analysisService) resolveWindow(q UserQuery) (domain.AnalysisWindow, error) {
	to := domain.DateOf(s.now())
	if q.To != nil {
		to = *q.To
	}
	from := to.AddDays(-(s.lookbackDays - 1))
	if q.From != nil {
		from = *q.From
	}
	if to.Before(from) {
		return domain.AnalysisWindow{}, fmt.Errorf("%w: from %s is after to %s", domain.ErrInvalidInput, from, to)
	}
	return domain.AnalysisWindow{From: from, To: to}, nil
}

// referenceTime bounds trends by the end of the window's last day, or by
// the current instant when that day has not ended yet.
func (s *analysisService) referenceTime(to domain.Date) time.Time {
	now := s.now()
	endOfTo := to.AddDays(1).Time()
	if endOfTo.Before(now) {
		return endOfTo
	}
	return now
}

func (s *analysisService) withDefaults(opts analysis.Options) analysis.Options {
	if opts.WindowDays <= 0 {
		opts.WindowDays = s.trendWindowDays
	}
	return opts
}

func (s *analysisService) comprehensive(ctx context.Context, ds *analysis.Dataset, opts analysis.Options) domain.ComprehensiveAnalysis {
	_, span := otel.Tracer("sleep-analysis-api/analysis").Start(ctx, "analysis.Comprehensive",
		trace.WithAttributes(
			attribute.Int("nights", len(ds.Sleep())),
			attribute.Int("window.days", opts.WindowDays),
		),
	)
	defer span.End()

	result := analysis.Comprehensive(ds, opts)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	span.SetAttributes(attribute.String("trend", string(result.Trends.Trend)))

	s.log.WithFields(logrus.Fields{
		"nights":      result.Summary.NightsAnalyzed,
		"trend":       result.Trends.Trend,
		"basis":       result.OptimalSleep.Basis,
		"window_days": opts.WindowDays,
	}).Debug("analysis complete")
	return result
}
