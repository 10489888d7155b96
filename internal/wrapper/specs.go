package wrapper

import (
	"context"
	"scrapquote/internal/dto/vpic_dto"
	"scrapquote/internal/schema"
	"time"
)

type Service struct {
	specsClient specsClient
	timeout     time.Duration
}

// New returns a fetcher of vehicle specifications, zero timeout means no deadline is added
func New(specsClient specsClient,
	timeout time.Duration,
) *Service {
	return &Service{
		specsClient: specsClient,
		timeout:     timeout,
	}
}

// GetSpecs fetches specifications of every trim matching the query
func (s *Service) GetSpecs(ctx context.Context, query schema.VehicleQuery) (schema.SpecResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	specs, err := s.specsClient.FetchSpecs(ctx, query.Year, query.Make, query.Model)
	if err != nil {
		return schema.SpecResult{}, err
	}

	return toSchema(specs), nil
}

func toSchema(specs *vpic_dto.ResponseBody) schema.SpecResult {
	if specs == nil {
		return schema.SpecResult{}
	}

	results := make([]schema.CandidateRecord, 0, len(specs.Results))
	for _, res := range specs.Results {
		candidate := schema.CandidateRecord{
			Specs: make([]schema.Spec, 0, len(res.Specs)),
		}
		for _, spec := range res.Specs {
			candidate.Specs = append(candidate.Specs, schema.Spec{
				Name:  spec.Name,
				Value: spec.Value,
			})
		}
		results = append(results, candidate)
	}

	return schema.SpecResult{
		Count:   specs.Count,
		Results: results,
	}
}
