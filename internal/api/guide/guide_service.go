package guide

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-viberoute/app/observability/metrics"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

const (
	defaultTemperature = 0.5
	defaultTimeout     = 60 * time.Second
)

// ContentGenerator is the model call the guide depends on.
// *generativeAI.AIClient satisfies it.
type ContentGenerator interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ Service = (*ServiceImpl)(nil)

// Service defines the guide queries. Each typed method returns exactly its
// query's record shape; Dispatch routes a tab to one of them.
type Service interface {
	GenerateItinerary(ctx context.Context, city string, hours int) (*types.GuideResponse[[]types.ItineraryStop], error)
	GetSafetyHeatmap(ctx context.Context, city string) (*types.GuideResponse[[]types.NeighborhoodSafety], error)
	GetLocalBites(ctx context.Context, city string) (*types.GuideResponse[[]types.Eatery], error)
	GetSocialTours(ctx context.Context, city string) (*types.GuideResponse[[]types.SocialActivity], error)
	GetCityOverview(ctx context.Context, city string) (*types.GuideResponse[types.CityOverview], error)

	// Dispatch returns nil, nil for tabs that do not query the model.
	Dispatch(ctx context.Context, tab types.Tab, q types.GuideQuery) (*types.QueryResult, error)
}

type Options struct {
	Temperature float32
	Timeout     time.Duration
	WebSearch   bool
}

type dispatchFunc func(ctx context.Context, q types.GuideQuery) (*types.QueryResult, error)

type ServiceImpl struct {
	logger   *slog.Logger
	aiClient ContentGenerator
	opts     Options
	inflight singleflight.Group
	routes   map[types.QueryKind]dispatchFunc
}

func NewServiceImpl(aiClient ContentGenerator, opts Options, logger *slog.Logger) *ServiceImpl {
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	s := &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
		opts:     opts,
	}
	s.routes = map[types.QueryKind]dispatchFunc{
		types.KindItinerary: route(types.KindItinerary,
			func(ctx context.Context, q types.GuideQuery) (*types.GuideResponse[[]types.ItineraryStop], error) {
				return s.GenerateItinerary(ctx, q.City, q.Hours())
			},
			func(r *types.QueryResult, d []types.ItineraryStop) { r.Itinerary = d }),
		types.KindSafety: route(types.KindSafety,
			func(ctx context.Context, q types.GuideQuery) (*types.GuideResponse[[]types.NeighborhoodSafety], error) {
				return s.GetSafetyHeatmap(ctx, q.City)
			},
			func(r *types.QueryResult, d []types.NeighborhoodSafety) { r.Safety = d }),
		types.KindBites: route(types.KindBites,
			func(ctx context.Context, q types.GuideQuery) (*types.GuideResponse[[]types.Eatery], error) {
				return s.GetLocalBites(ctx, q.City)
			},
			func(r *types.QueryResult, d []types.Eatery) { r.Bites = d }),
		types.KindSocial: route(types.KindSocial,
			func(ctx context.Context, q types.GuideQuery) (*types.GuideResponse[[]types.SocialActivity], error) {
				return s.GetSocialTours(ctx, q.City)
			},
			func(r *types.QueryResult, d []types.SocialActivity) { r.Social = d }),
		types.KindOverview: route(types.KindOverview,
			func(ctx context.Context, q types.GuideQuery) (*types.GuideResponse[types.CityOverview], error) {
				return s.GetCityOverview(ctx, q.City)
			},
			func(r *types.QueryResult, d types.CityOverview) { r.Overview = &d }),
	}
	return s
}

func route[T any](kind types.QueryKind,
	call func(context.Context, types.GuideQuery) (*types.GuideResponse[T], error),
	assign func(*types.QueryResult, T)) dispatchFunc {
	return func(ctx context.Context, q types.GuideQuery) (*types.QueryResult, error) {
		resp, err := call(ctx, q)
		if err != nil {
			return nil, err
		}
		res := &types.QueryResult{Kind: kind, Sources: resp.Sources}
		assign(res, resp.Data)
		return res, nil
	}
}

func (s *ServiceImpl) Dispatch(ctx context.Context, tab types.Tab, q types.GuideQuery) (*types.QueryResult, error) {
	kind, ok := KindForTab(tab)
	if !ok {
		s.logger.DebugContext(ctx, "Tab does not query the model", slog.String("tab", string(tab)))
		return nil, nil
	}
	return s.routes[kind](ctx, q)
}

func (s *ServiceImpl) GenerateItinerary(ctx context.Context, city string, hours int) (*types.GuideResponse[[]types.ItineraryStop], error) {
	if hours < 0 {
		return nil, types.ErrInvalidHours
	}
	q := types.GuideQuery{City: city, DurationHours: hours}
	return listQuery[types.ItineraryStop](ctx, s, types.KindItinerary, q)
}

func (s *ServiceImpl) GetSafetyHeatmap(ctx context.Context, city string) (*types.GuideResponse[[]types.NeighborhoodSafety], error) {
	return listQuery[types.NeighborhoodSafety](ctx, s, types.KindSafety, types.GuideQuery{City: city})
}

func (s *ServiceImpl) GetLocalBites(ctx context.Context, city string) (*types.GuideResponse[[]types.Eatery], error) {
	return listQuery[types.Eatery](ctx, s, types.KindBites, types.GuideQuery{City: city})
}

func (s *ServiceImpl) GetSocialTours(ctx context.Context, city string) (*types.GuideResponse[[]types.SocialActivity], error) {
	return listQuery[types.SocialActivity](ctx, s, types.KindSocial, types.GuideQuery{City: city})
}

func (s *ServiceImpl) GetCityOverview(ctx context.Context, city string) (*types.GuideResponse[types.CityOverview], error) {
	q := types.GuideQuery{City: city}
	text, sources, err := s.generate(ctx, types.KindOverview, q)
	if err != nil {
		return nil, err
	}
	overview, err := NormalizeObject[types.CityOverview](text)
	if err != nil {
		s.discarded(ctx, types.KindOverview, err)
	}
	fillOverview(&overview)
	return &types.GuideResponse[types.CityOverview]{Data: overview, Sources: sources}, nil
}

func listQuery[T any](ctx context.Context, s *ServiceImpl, kind types.QueryKind, q types.GuideQuery) (*types.GuideResponse[[]T], error) {
	text, sources, err := s.generate(ctx, kind, q)
	if err != nil {
		return nil, err
	}
	data, err := NormalizeList[T](text)
	if err != nil {
		s.discarded(ctx, kind, err)
	}
	return &types.GuideResponse[[]T]{Data: data, Sources: sources}, nil
}

func (s *ServiceImpl) discarded(ctx context.Context, kind types.QueryKind, err error) {
	s.logger.WarnContext(ctx, "Discarded unparseable model output",
		slog.String("kind", string(kind)), slog.Any("error", err))
	metrics.Get().GuideParseFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
}

type generated struct {
	text    string
	sources []types.SourceCitation
}

// generate runs one model call for the query. Identical calls already in
// flight share a single upstream request.
func (s *ServiceImpl) generate(ctx context.Context, kind types.QueryKind, q types.GuideQuery) (string, []types.SourceCitation, error) {
	city := strings.TrimSpace(q.City)
	if city == "" {
		return "", nil, types.ErrCityRequired
	}
	q.City = city

	spec, ok := BuildSpec(kind, q)
	if !ok {
		return "", nil, fmt.Errorf("unsupported query kind %q", kind)
	}

	ctx, span := otel.Tracer("GuideService").Start(ctx, "generate", trace.WithAttributes(
		attribute.String("guide.kind", string(kind)),
		attribute.String("guide.city", city),
	))
	defer span.End()

	l := s.logger.With(slog.String("kind", string(kind)), slog.String("city", city))
	key := string(kind) + "|" + city + "|" + strconv.Itoa(q.Hours())

	// The shared call is detached from any single caller so one caller leaving
	// does not fail the others waiting on the same key.
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.Timeout)
		defer cancel()

		attrs := metric.WithAttributes(attribute.String("kind", string(kind)))
		m := metrics.Get()
		m.GuideRequestsTotal.Add(callCtx, 1, attrs)

		start := time.Now()
		l.DebugContext(callCtx, "Sending guide prompt", slog.Int("prompt_length", len(spec.Prompt)))
		resp, err := s.aiClient.GenerateResponse(callCtx, spec.Prompt, s.contentConfig(spec.Schema))
		m.GuideDurationSeconds.Record(callCtx, time.Since(start).Seconds(), attrs)
		if err != nil {
			m.GuideErrorsTotal.Add(callCtx, 1, attrs)
			return nil, err
		}
		return generated{text: ResponseText(resp), sources: ExtractSources(resp)}, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		err := ctx.Err()
		l.WarnContext(ctx, "Caller stopped waiting for guide query", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Caller cancelled")
		return "", nil, fmt.Errorf("failed to generate %s for %s: %w", kind, city, err)
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		l.ErrorContext(ctx, "Guide query failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Model call failed")
		return "", nil, fmt.Errorf("failed to generate %s for %s: %w", kind, city, err)
	}

	g := v.(generated)
	span.SetAttributes(
		attribute.Bool("guide.shared", shared),
		attribute.Int("guide.sources", len(g.sources)),
	)
	span.SetStatus(codes.Ok, "Guide generated")
	l.InfoContext(ctx, "Guide query completed",
		slog.Int("response_length", len(g.text)),
		slog.Int("sources", len(g.sources)),
		slog.Bool("shared", shared))
	return g.text, slices.Clone(g.sources), nil
}

func (s *ServiceImpl) contentConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(s.opts.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if s.opts.WebSearch {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return config
}

// fillOverview replaces nil nested lists so they encode as [].
func fillOverview(o *types.CityOverview) {
	if o.TypicalFoods == nil {
		o.TypicalFoods = []types.TypicalFood{}
	}
	for i := range o.TypicalFoods {
		if o.TypicalFoods[i].RecommendedPlaces == nil {
			o.TypicalFoods[i].RecommendedPlaces = []types.RecommendedPlace{}
		}
	}
	if o.Monuments == nil {
		o.Monuments = []types.Monument{}
	}
	if o.HiddenGems == nil {
		o.HiddenGems = []types.HiddenGem{}
	}
}
