package service

import (
	"context"
	"errors"
	"scrapquote/internal/extractor"
	"scrapquote/internal/metrics"
	"scrapquote/internal/pricing"
	"scrapquote/internal/schema"
	"time"

	"github.com/rs/zerolog/log"
)

type Service struct {
	specsGetter specsGetter
}

func New(specsGetter specsGetter) *Service {
	return &Service{
		specsGetter: specsGetter,
	}
}

// CurbWeight looks a vehicle up and returns its curb weight in short tons
func (s *Service) CurbWeight(ctx context.Context, query schema.VehicleQuery) (float64, error) {
	reqStart := time.Now()
	specs, err := s.specsGetter.GetSpecs(ctx, query)
	latency := time.Since(reqStart)
	metrics.UpstreamLatency.Observe(latency.Seconds())

	if err != nil {
		metrics.LookupsTotal.WithLabelValues(outcome(err)).Inc()
		log.Error().Err(err).
			Int("year", query.Year).
			Str("make", query.Make).
			Str("model", query.Model).
			Msg("couldn't fetch vehicle specifications")
		return 0, err
	}

	weight, err := extractor.ExtractWeight(specs, query.SpecificModel)
	metrics.LookupsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		log.Warn().Err(err).
			Int("year", query.Year).
			Str("make", query.Make).
			Str("model", query.Model).
			Int("candidates", len(specs.Results)).
			Msg("couldn't extract curb weight")
		return 0, err
	}

	log.Info().
		Int("year", query.Year).
		Str("make", query.Make).
		Str("model", query.Model).
		Str("specific_model", query.SpecificModel).
		Float64("curb_weight", weight).
		Str("latency", latency.String()).
		Msg("curb weight found")

	return weight, nil
}

// ScrapQuote prices a vehicle by its curb weight
func (s *Service) ScrapQuote(ctx context.Context, query schema.VehicleQuery, ontario bool) (schema.ScrapQuote, error) {
	weight, err := s.CurbWeight(ctx, query)
	if err != nil {
		return schema.ScrapQuote{}, err
	}

	return pricing.ComputePrice(weight, ontario), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, extractor.ErrNoData):
		return "no_data"
	case errors.Is(err, extractor.ErrFieldNotFound):
		return "field_not_found"
	case errors.Is(err, extractor.ErrInvalidNumericValue):
		return "invalid_value"
	default:
		return "upstream"
	}
}
