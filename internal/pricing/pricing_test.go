package pricing

import (
	"testing"

	"scrapquote/internal/schema"
)

func TestComputePrice(t *testing.T) {
	testCases := []struct {
		name     string
		weight   float64
		ontario  bool
		expected schema.ScrapQuote
	}{
		{
			name:     "ontario",
			weight:   1.5,
			ontario:  true,
			expected: schema.ScrapQuote{Weight: 1.5, Rate: 220, Price: 330},
		},
		{
			name:     "elsewhere",
			weight:   1.5,
			ontario:  false,
			expected: schema.ScrapQuote{Weight: 1.5, Rate: 120, Price: 180},
		},
		{
			name:     "zero weight",
			weight:   0,
			ontario:  true,
			expected: schema.ScrapQuote{Weight: 0, Rate: 220, Price: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePrice(tc.weight, tc.ontario)
			if got != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestComputePrice_NotRounded(t *testing.T) {
	weight := 3.3
	expected := weight * DefaultRate
	got := ComputePrice(weight, false)
	if got.Price != expected {
		t.Errorf("expected %v, got %v", expected, got.Price)
	}
}
