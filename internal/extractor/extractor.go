// Package extractor picks a trim out of a specifications lookup and reads its curb weight.
//
// Several trims may come back for one year/make/model. When a specific model hint is
// given the first trim whose "model" spec contains the hint wins, otherwise the first
// trim is used. This is a best-effort match, not an exact one.
package extractor

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"scrapquote/internal/schema"
)

const (
	modelSpecName      = "model"
	curbWeightSpecName = "CW"

	// kilograms to short tons
	kgToShortTons = 0.001102
)

var (
	ErrNoData              = errors.New("No data found for the specified vehicle")
	ErrFieldNotFound       = errors.New("Weight (CW) not found in the specifications")
	ErrInvalidNumericValue = errors.New("Weight value is not a valid number")
)

// ExtractWeight returns the curb weight of the selected trim in short tons rounded to one decimal
func ExtractWeight(result schema.SpecResult, specificModel string) (float64, error) {
	if result.Count == 0 || len(result.Results) == 0 {
		return 0, ErrNoData
	}

	selected := selectCandidate(result, specificModel)

	raw, ok := findSpec(selected, curbWeightSpecName)
	if !ok {
		return 0, ErrFieldNotFound
	}

	weight, err := parseWeight(raw)
	if err != nil {
		return 0, err
	}

	return roundTo(weight*kgToShortTons, 1), nil
}

func selectCandidate(result schema.SpecResult, specificModel string) schema.CandidateRecord {
	if result.Count <= 1 || specificModel == "" {
		return result.Results[0]
	}

	hint := strings.ToLower(specificModel)
	for _, candidate := range result.Results {
		model, ok := findSpec(candidate, modelSpecName)
		if !ok {
			continue
		}
		model = strings.ToLower(strings.TrimSpace(model))
		if model != "" && strings.Contains(model, hint) {
			return candidate
		}
	}

	return result.Results[0]
}

// first spec with the name wins
func findSpec(candidate schema.CandidateRecord, name string) (string, bool) {
	for _, spec := range candidate.Specs {
		if strings.EqualFold(spec.Name, name) {
			return spec.Value, true
		}
	}
	return "", false
}

func parseWeight(raw string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidNumericValue
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, ErrInvalidNumericValue
	}
	return weight, nil
}

func roundTo(value float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}
